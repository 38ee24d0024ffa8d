package agent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/samarth/walletagent/internal/discovery"
	"github.com/samarth/walletagent/internal/payment"
	"github.com/samarth/walletagent/internal/planner"
	"github.com/samarth/walletagent/internal/receipts"
)

type discoveryClient interface {
	Fetch(ctx context.Context, providerBaseURL string) (*discovery.Document, error)
}

type planSelector interface {
	Choose(ctx context.Context, req planner.Request) *planner.Plan
}

type paymentService interface {
	Pay(ctx context.Context, wallet string, plan planner.Plan, maxUSD float64) (*payment.Result, error)
}

type receiptNotifier interface {
	Send(ctx context.Context, content string)
}

func New(disc discoveryClient, plans planSelector, payments paymentService, store receipts.Store, notifier receiptNotifier) (*Service, error) {
	return &Service{
		discovery: disc,
		plans:     plans,
		payments:  payments,
		store:     store,
		notifier:  notifier,
	}, nil
}

// Service sequences a payment request: discovery, plan selection, budget
// authorization, settlement, and receipt recording. Each stage's failure is
// wrapped in a stage-specific error type; there is no retry or rollback.
type Service struct {
	discovery discoveryClient
	plans     planSelector
	payments  paymentService
	store     receipts.Store
	notifier  receiptNotifier
}

type PayRequest struct {
	Task        string
	MaxUSD      float64
	ProviderURL string
}

func (s *Service) PayForTask(ctx context.Context, req PayRequest) (*receipts.Receipt, error) {
	invoiceID := "inv_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	doc, err := s.discovery.Fetch(ctx, req.ProviderURL)
	if err != nil {
		return nil, &DiscoveryError{Err: err}
	}

	plan := s.plans.Choose(ctx, planner.Request{
		Task:         req.Task,
		MaxUSD:       req.MaxUSD,
		UnitPriceUSD: doc.PriceUSD,
	})
	if plan == nil {
		return nil, &PlanError{Err: fmt.Errorf("no plan produced")}
	}

	result, err := s.payments.Pay(ctx, doc.ProviderWallet, *plan, req.MaxUSD)
	if err != nil {
		if errors.Is(err, payment.ErrBudgetExceeded) {
			return nil, &BudgetError{Plan: *plan, MaxUSD: req.MaxUSD}
		}
		return nil, &PaymentError{Err: err}
	}

	receipt, err := s.store.Add(ctx, receipts.Receipt{
		InvoiceID:       invoiceID,
		Provider:        doc.Name,
		ProviderURL:     req.ProviderURL,
		ProviderWallet:  doc.ProviderWallet,
		PriceUSDPerUnit: doc.PriceUSD,
		Quantity:        plan.Quantity,
		TotalCostUSD:    plan.TotalCostUSD,
		TxHash:          result.TxHash,
		Status:          result.Status,
	})
	if err != nil {
		// The payment already went through and there is no compensating
		// action. Log the tx reference so the record is not lost entirely.
		log.Printf("agent: receipt %v lost: tx=%v amount=%v err=%v", invoiceID, result.TxHash, plan.TotalCostUSD, err)
		return nil, &StoreError{Err: err}
	}

	log.Printf("agent: paid %v USDC to %v for %d unit(s), tx=%v", receipt.TotalCostUSD, receipt.ProviderWallet, receipt.Quantity, receipt.TxHash)

	if s.notifier != nil {
		go s.notifier.Send(context.Background(), fmt.Sprintf("paid %v USDC for %d unit(s) of %v", receipt.TotalCostUSD, receipt.Quantity, receipt.Provider))
	}

	return receipt, nil
}

func (s *Service) ListPayments(ctx context.Context) ([]receipts.Receipt, error) {
	return s.store.List(ctx)
}
