package service

import (
	"context"
	"fmt"
	"time"

	"fundfolio/internal/calculator"
	"fundfolio/internal/db/models/postgres/public/model"
	"fundfolio/internal/domain"
	"fundfolio/internal/repository"
)

// EnrichedFixedDeposit is a stored deposit decorated with its computed
// valuation as of now.
type EnrichedFixedDeposit struct {
	model.FixedDeposit
	CurrentValue    float64 `json:"currentValue"`
	AccruedInterest float64 `json:"accruedInterest"`
	DaysToMaturity  int     `json:"daysToMaturity"`
	IsMatured       bool    `json:"isMatured"`
}

// InterestPreviewInput carries deposit terms for a what-if calculation that
// never touches storage.
type InterestPreviewInput struct {
	Principal       float64
	AnnualRate      float64
	StartDate       time.Time
	MaturityDate    time.Time
	InterestType    domain.InterestType
	PayoutFrequency domain.PayoutFrequency
}

type InterestPreview struct {
	TotalInterest   float64 `json:"totalInterest"`
	MaturityValue   float64 `json:"maturityValue"`
	TermDays        int     `json:"termDays"`
	CurrentInterest float64 `json:"currentInterest"`
	CurrentValue    float64 `json:"currentValue"`
	DaysElapsed     int     `json:"daysElapsed"`
	DaysRemaining   int     `json:"daysRemaining"`
}

type FixedDepositService interface {
	Create(ctx context.Context, fd model.FixedDeposit) (*EnrichedFixedDeposit, error)
	Get(ctx context.Context, id int32) (*EnrichedFixedDeposit, error)
	List(ctx context.Context) ([]EnrichedFixedDeposit, error)
	Update(ctx context.Context, fd model.FixedDeposit) (*EnrichedFixedDeposit, error)
	Delete(ctx context.Context, id int32) error
	PreviewInterest(ctx context.Context, in InterestPreviewInput) (*InterestPreview, error)
}

type fixedDepositServiceHandler struct {
	FixedDepositRepository repository.FixedDepositRepository
}

func NewFixedDepositService(fixedDepositRepository repository.FixedDepositRepository) FixedDepositService {
	return fixedDepositServiceHandler{
		FixedDepositRepository: fixedDepositRepository,
	}
}

// toDomainDeposit validates the stored enum columns while converting. Rows
// only ever hold values the resolvers accepted, so failure here means the
// table was edited out of band.
func toDomainDeposit(fd model.FixedDeposit) (*domain.FixedDeposit, error) {
	frequency, err := domain.NewPayoutFrequency(fd.InterestPayoutFrequency)
	if err != nil {
		return nil, fmt.Errorf("fixed deposit %d: %w", fd.ID, err)
	}
	interestType, err := domain.NewInterestType(fd.InterestCalculationType)
	if err != nil {
		return nil, fmt.Errorf("fixed deposit %d: %w", fd.ID, err)
	}

	return &domain.FixedDeposit{
		ID:              fd.ID,
		Principal:       fd.PrincipalAmount,
		AnnualRate:      fd.InterestRate,
		StartDate:       fd.StartDate,
		MaturityDate:    fd.MaturityDate,
		InstitutionName: fd.InstitutionName,
		AccountNumber:   fd.AccountNumber,
		PayoutFrequency: *frequency,
		InterestType:    *interestType,
		AutoRenewal:     fd.AutoRenewal,
		Notes:           fd.Notes,
	}, nil
}

func enrich(fd model.FixedDeposit, asOf time.Time) (*EnrichedFixedDeposit, error) {
	d, err := toDomainDeposit(fd)
	if err != nil {
		return nil, err
	}
	currentValue, accruedInterest, daysToMaturity := calculator.DepositValue(*d, asOf)
	return &EnrichedFixedDeposit{
		FixedDeposit:    fd,
		CurrentValue:    currentValue,
		AccruedInterest: accruedInterest,
		DaysToMaturity:  daysToMaturity,
		IsMatured:       daysToMaturity <= 0,
	}, nil
}

func (h fixedDepositServiceHandler) Create(ctx context.Context, fd model.FixedDeposit) (*EnrichedFixedDeposit, error) {
	if _, err := toDomainDeposit(fd); err != nil {
		return nil, err
	}
	created, err := h.FixedDepositRepository.Add(fd)
	if err != nil {
		return nil, err
	}
	return enrich(*created, time.Now().UTC())
}

func (h fixedDepositServiceHandler) Get(ctx context.Context, id int32) (*EnrichedFixedDeposit, error) {
	fd, err := h.FixedDepositRepository.Get(id)
	if err != nil {
		return nil, err
	}
	return enrich(*fd, time.Now().UTC())
}

func (h fixedDepositServiceHandler) List(ctx context.Context) ([]EnrichedFixedDeposit, error) {
	fds, err := h.FixedDepositRepository.List()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	out := make([]EnrichedFixedDeposit, 0, len(fds))
	for _, fd := range fds {
		e, err := enrich(fd, now)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, nil
}

func (h fixedDepositServiceHandler) Update(ctx context.Context, fd model.FixedDeposit) (*EnrichedFixedDeposit, error) {
	if _, err := toDomainDeposit(fd); err != nil {
		return nil, err
	}
	existing, err := h.FixedDepositRepository.Get(fd.ID)
	if err != nil {
		return nil, err
	}
	fd.CreatedAt = existing.CreatedAt
	updated, err := h.FixedDepositRepository.Update(fd)
	if err != nil {
		return nil, err
	}
	return enrich(*updated, time.Now().UTC())
}

func (h fixedDepositServiceHandler) Delete(ctx context.Context, id int32) error {
	return h.FixedDepositRepository.Delete(id)
}

// PreviewInterest runs the deposit math twice, once as of maturity and once
// as of now, without persisting anything.
func (h fixedDepositServiceHandler) PreviewInterest(ctx context.Context, in InterestPreviewInput) (*InterestPreview, error) {
	if !in.MaturityDate.After(in.StartDate) {
		return nil, fmt.Errorf("maturity date must be after start date")
	}

	d := domain.FixedDeposit{
		Principal:       in.Principal,
		AnnualRate:      in.AnnualRate,
		StartDate:       in.StartDate,
		MaturityDate:    in.MaturityDate,
		PayoutFrequency: in.PayoutFrequency,
		InterestType:    in.InterestType,
	}

	now := time.Now().UTC()
	maturityValue, totalInterest, _ := calculator.DepositValue(d, in.MaturityDate)
	currentValue, currentInterest, daysRemaining := calculator.DepositValue(d, now)

	daysElapsed := int(now.Sub(in.StartDate).Hours() / 24)
	if daysElapsed < 0 {
		daysElapsed = 0
	}

	return &InterestPreview{
		TotalInterest:   totalInterest,
		MaturityValue:   maturityValue,
		TermDays:        int(in.MaturityDate.Sub(in.StartDate).Hours() / 24),
		CurrentInterest: currentInterest,
		CurrentValue:    currentValue,
		DaysElapsed:     daysElapsed,
		DaysRemaining:   daysRemaining,
	}, nil
}
