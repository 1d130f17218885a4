package service

import (
	"fmt"
	"time"

	"communication-tracker-backend/internal/cadence"
	"communication-tracker-backend/internal/database/models"
	"communication-tracker-backend/internal/logger"
	"communication-tracker-backend/internal/repository"

	"github.com/google/uuid"
)

// dueDateLayout is the wire format for due and contact dates; the cadence
// engine works at day granularity so no time component is reported.
const dueDateLayout = "2006-01-02"

// CadenceService builds the dashboard and notification read models by running
// the cadence engine over every company and its communication history.
type CadenceService struct {
	companyRepo repository.CompanyRepositoryInterface
	commRepo    repository.CommunicationRepositoryInterface
	logger      *logger.Logger
}

// NewCadenceService creates a new cadence service
func NewCadenceService(
	companyRepo repository.CompanyRepositoryInterface,
	commRepo repository.CommunicationRepositoryInterface,
	log *logger.Logger,
) *CadenceService {
	return &CadenceService{
		companyRepo: companyRepo,
		commRepo:    commRepo,
		logger:      log,
	}
}

// ContactItem is one logged communication as shown on the dashboard
type ContactItem struct {
	ID                uuid.UUID `json:"id"`
	CommunicationType string    `json:"communicationType"`
	CommunicationDate string    `json:"communicationDate"`
}

// DueItem is the next communication a company is due for. A scheduled item
// comes from an explicitly logged future communication; otherwise the date is
// derived from the company's periodicity.
type DueItem struct {
	CommunicationType string `json:"communicationType,omitempty"`
	DueDate           string `json:"dueDate"`
	Scheduled         bool   `json:"scheduled"`
}

// DashboardCompany is one row of the dashboard grid
type DashboardCompany struct {
	ID           uuid.UUID      `json:"id"`
	CompanyName  string         `json:"companyName"`
	Periodicity  int            `json:"periodicity"`
	LastContacts []ContactItem  `json:"lastContacts"`
	NextDue      *DueItem       `json:"nextDue"`
	Status       cadence.Status `json:"status"`
}

// DashboardResponse is the full dashboard read model
type DashboardResponse struct {
	Companies []DashboardCompany `json:"companies"`
	Summary   cadence.Summary    `json:"summary"`
}

// NotificationCompany is one entry of the overdue / due-today lists
type NotificationCompany struct {
	ID          uuid.UUID `json:"id"`
	CompanyName string    `json:"companyName"`
	NextDue     *DueItem  `json:"nextDue"`
	OverdueDays int       `json:"overdueDays,omitempty"`
}

// NotificationsResponse groups companies needing attention
type NotificationsResponse struct {
	Overdue  []NotificationCompany `json:"overdue"`
	DueToday []NotificationCompany `json:"dueToday"`
	Summary  cadence.Summary       `json:"summary"`
}

// Dashboard classifies every company at now and returns the grid rows plus
// the aggregate counts
func (s *CadenceService) Dashboard(now time.Time) (*DashboardResponse, error) {
	companies, histories, err := s.load()
	if err != nil {
		return nil, err
	}

	response := &DashboardResponse{Companies: make([]DashboardCompany, 0, len(companies))}
	reports := make([]cadence.Report, 0, len(companies))

	for i := range companies {
		company := &companies[i]
		report, err := s.classify(company, histories[company.ID], now)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)

		row := DashboardCompany{
			ID:           company.ID,
			CompanyName:  company.CompanyName,
			Periodicity:  company.Periodicity,
			LastContacts: make([]ContactItem, 0, len(report.LastContacts)),
			NextDue:      toDueItem(report.NextDue),
			Status:       report.Status,
		}
		for _, e := range report.LastContacts {
			row.LastContacts = append(row.LastContacts, ContactItem{
				ID:                e.ID,
				CommunicationType: e.Type,
				CommunicationDate: e.Date.Format(dueDateLayout),
			})
		}
		response.Companies = append(response.Companies, row)
	}

	response.Summary = cadence.Summarize(reports)
	return response, nil
}

// Notifications returns only the companies that are overdue or due today
func (s *CadenceService) Notifications(now time.Time) (*NotificationsResponse, error) {
	companies, histories, err := s.load()
	if err != nil {
		return nil, err
	}

	response := &NotificationsResponse{
		Overdue:  make([]NotificationCompany, 0),
		DueToday: make([]NotificationCompany, 0),
	}

	for i := range companies {
		company := &companies[i]
		report, err := s.classify(company, histories[company.ID], now)
		if err != nil {
			return nil, err
		}

		item := NotificationCompany{
			ID:          company.ID,
			CompanyName: company.CompanyName,
			NextDue:     toDueItem(report.NextDue),
		}
		switch report.Status {
		case cadence.StatusOverdue:
			item.OverdueDays = cadence.OverdueDays(report, now)
			response.Overdue = append(response.Overdue, item)
		case cadence.StatusDueToday:
			response.DueToday = append(response.DueToday, item)
		}
	}

	response.Summary = cadence.Summary{
		Overdue:  len(response.Overdue),
		DueToday: len(response.DueToday),
	}
	return response, nil
}

// load fetches all companies and the chronological communication log grouped
// by company. One log query serves the whole pass.
func (s *CadenceService) load() ([]models.Company, map[uuid.UUID][]cadence.Entry, error) {
	companies, err := s.companyRepo.GetAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get companies: %w", err)
	}

	communications, err := s.commRepo.GetChronological()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get communications: %w", err)
	}

	histories := make(map[uuid.UUID][]cadence.Entry, len(companies))
	for _, c := range communications {
		histories[c.CompanyID] = append(histories[c.CompanyID], cadence.Entry{
			ID:   c.ID,
			Type: c.CommunicationType,
			Date: c.CommunicationDate,
		})
	}
	return companies, histories, nil
}

func (s *CadenceService) classify(company *models.Company, history []cadence.Entry, now time.Time) (cadence.Report, error) {
	in := cadence.Input{
		Anchor:  company.CreatedAt,
		History: history,
		Now:     now,
	}
	// Zero means the company has no cadence configured. A negative value can
	// only come from a corrupt row and is rejected by the engine.
	if company.Periodicity != 0 {
		p := company.Periodicity
		in.PeriodicityDays = &p
	}

	report, err := cadence.Classify(in)
	if err != nil {
		return cadence.Report{}, fmt.Errorf("failed to classify company %s: %w", company.ID, err)
	}
	if report.Skipped > 0 {
		s.logger.WithFields(map[string]interface{}{
			"company_id": company.ID,
			"skipped":    report.Skipped,
		}).Warn("communications without a date were excluded from cadence")
	}
	return report, nil
}

func toDueItem(d *cadence.DueItem) *DueItem {
	if d == nil {
		return nil
	}
	return &DueItem{
		CommunicationType: d.Type,
		DueDate:           d.Date.Format(dueDateLayout),
		Scheduled:         !d.Synthetic,
	}
}
