package usecases

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"vehicle-finance.backend/internal/domain/entities"
	domainerrors "vehicle-finance.backend/internal/domain/errors"
	"vehicle-finance.backend/internal/domain/repositories"
	"vehicle-finance.backend/pkg/logger"
)

// Replicator pushes one lead to the remote record store without
// blocking the caller. Replication is advisory: its outcome can never
// fail or roll back the local mutation that triggered it.
type Replicator interface {
	DispatchAsync(lead *entities.Lead)
}

// LeadUsecase drives the lead lifecycle: creation, processing, and the
// read projections for the list and print views.
type LeadUsecase struct {
	leadRepo   repositories.LeadRepository
	replicator Replicator
}

func NewLeadUsecase(leadRepo repositories.LeadRepository, replicator Replicator) *LeadUsecase {
	return &LeadUsecase{leadRepo: leadRepo, replicator: replicator}
}

// CreateLead appends a new case. The local append commits before the
// sync attempt is fired; a failed dispatch never surfaces here.
func (u *LeadUsecase) CreateLead(ctx context.Context, draft *entities.Lead) (*entities.Lead, error) {
	if strings.TrimSpace(draft.CustomerName) == "" {
		return nil, domainerrors.BadRequest("customer name is required")
	}
	if strings.TrimSpace(draft.Mobile) == "" {
		return nil, domainerrors.BadRequest("mobile number is required")
	}
	if strings.TrimSpace(draft.BrokerName) == "" {
		return nil, domainerrors.BadRequest("broker name is required")
	}

	lead, err := u.leadRepo.Create(ctx, draft)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "lead created",
		zap.String("case_id", lead.ID),
		zap.String("customer", lead.CustomerName))

	u.replicator.DispatchAsync(lead)
	return lead, nil
}

// ProcessLeadInput carries the processing-form values
type ProcessLeadInput struct {
	Verification entities.VerificationData
	Approval     entities.ApprovalData
}

// ProcessLead records the verification and approval values and derives
// the resulting status. An unknown id leaves the collection unchanged.
func (u *LeadUsecase) ProcessLead(ctx context.Context, id string, input ProcessLeadInput) (*entities.Lead, error) {
	current, err := u.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	status := entities.DeriveStatus(current.Status, &input.Verification, &input.Approval)
	updated, err := u.leadRepo.Update(ctx, id, entities.LeadUpdate{
		Verification: &input.Verification,
		Approval:     &input.Approval,
		Status:       &status,
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "lead processed",
		zap.String("case_id", updated.ID),
		zap.String("status", string(updated.Status)))

	u.replicator.DispatchAsync(updated)
	return updated, nil
}

func (u *LeadUsecase) GetLead(ctx context.Context, id string) (*entities.Lead, error) {
	return u.leadRepo.GetByID(ctx, id)
}

// ListLeads returns the collection in insertion order. A non-empty
// search term narrows it to leads whose customer name, case id, or
// mobile number contains the term (the dashboard search behavior).
func (u *LeadUsecase) ListLeads(ctx context.Context, search string) ([]*entities.Lead, error) {
	leads, err := u.leadRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return leads, nil
	}

	term := strings.ToLower(search)
	filtered := make([]*entities.Lead, 0, len(leads))
	for _, l := range leads {
		if strings.Contains(strings.ToLower(l.CustomerName), term) ||
			strings.Contains(strings.ToLower(l.ID), term) ||
			strings.Contains(l.Mobile, search) {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}

// AgreementDocument is one attached photo on the printed sheet
type AgreementDocument struct {
	Label string `json:"label"`
	Image string `json:"image"`
}

// AgreementSheet is the print-view projection of one case
type AgreementSheet struct {
	CaseID       string              `json:"caseId"`
	Date         string              `json:"date"`
	CustomerName string              `json:"customerName"`
	Mobile       string              `json:"mobile"`
	BrokerName   string              `json:"brokerName"`
	GuarName     string              `json:"guarName"`
	LoanAmount   string              `json:"loanAmount"`
	Tenure       string              `json:"tenure"`
	InterestRate string              `json:"interestRate"`
	Status       entities.Status     `json:"status"`
	Documents    []AgreementDocument `json:"documents"`
}

// AgreementSheet builds the printable agreement for one case
func (u *LeadUsecase) AgreementSheet(ctx context.Context, id string) (*AgreementSheet, error) {
	lead, err := u.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sheet := &AgreementSheet{
		CaseID:       lead.ID,
		Date:         lead.CreatedAt.Format("02/01/2006"),
		CustomerName: lead.CustomerName,
		Mobile:       lead.Mobile,
		BrokerName:   lead.BrokerName,
		GuarName:     orDefault(lead.GuarName, "N/A"),
		LoanAmount:   "0.00",
		Tenure:       "0",
		InterestRate: "0",
		Status:       lead.Status,
	}
	if a := lead.Approval; a != nil {
		sheet.LoanAmount = orDefault(a.LoanAmount, "0.00")
		sheet.Tenure = orDefault(a.Tenure, "0")
		sheet.InterestRate = orDefault(a.InterestRate, "0")
	}

	for _, doc := range []struct {
		label string
		image string
	}{
		{"Cust. Photo", lead.CustPhoto},
		{"Adhaar F", lead.CustAadhaarFront},
		{"Guar. Photo", lead.GuarPhoto},
		{"RC Photo", lead.RCFile},
	} {
		if doc.image != "" {
			sheet.Documents = append(sheet.Documents, AgreementDocument{Label: doc.label, Image: doc.image})
		}
	}

	return sheet, nil
}

func orDefault(val, fallback string) string {
	if val == "" {
		return fallback
	}
	return val
}
