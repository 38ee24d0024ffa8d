package notifier

import (
	"context"
	"fmt"
	"log"

	"github.com/nbd-wtf/go-nostr"
	"github.com/nbd-wtf/go-nostr/nip19"
)

var defaultRelayURLs = []string{"wss://nostr.mutinywallet.com"}

// New builds a Notifier from an nsec-encoded private key.
func New(nsec string) (*Notifier, error) {
	_, sk, err := nip19.Decode(nsec)
	if err != nil {
		return nil, fmt.Errorf("nip19 decode: %w", err)
	}
	privateKey := sk.(string)

	pubkey, err := nostr.GetPublicKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("get pubkey: %w", err)
	}

	return &Notifier{
		relayURLs:  defaultRelayURLs,
		pubkey:     pubkey,
		privateKey: privateKey,
	}, nil
}

// Notifier announces recorded payments as nostr text notes.
type Notifier struct {
	relayURLs          []string
	pubkey, privateKey string
}

func (n *Notifier) Send(ctx context.Context, content string) {
	event := n.newEvent(content)
	n.connectAndSend(ctx, event)
}

func (n *Notifier) newEvent(content string) nostr.Event {
	event := nostr.Event{
		PubKey:    n.pubkey,
		CreatedAt: nostr.Now(),
		Kind:      nostr.KindTextNote,
		Tags:      nil,
		Content:   content,
	}
	event.Sign(n.privateKey)

	return event
}

func (n *Notifier) connectAndSend(ctx context.Context, event nostr.Event) {
	for _, url := range n.relayURLs {
		relay, err := nostr.RelayConnect(ctx, url)
		if err != nil {
			log.Printf("notifier: relay connect: %v", err)
			continue
		}
		defer relay.Close()

		if _, err := relay.Publish(ctx, event); err != nil {
			log.Printf("notifier: publish: %v", err)
			continue
		}
	}
}
