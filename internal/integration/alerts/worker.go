// Package alerts sends budget alert emails when monthly spending exceeds a budget.
package alerts

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/application/usecase/budget"
	"github.com/budgetwise/backend/internal/domain/entity"
	"github.com/budgetwise/backend/internal/integration/email/templates"
)

// Worker periodically checks budgets of opted-in users and emails them when a
// budget first crosses the exceeded threshold in a month.
type Worker struct {
	users        adapter.UserRepository
	budgetStatus *budget.GetBudgetStatusUseCase
	sender       adapter.EmailSender
	renderer     *templates.Renderer
	pollInterval time.Duration
	now          func() time.Time

	// notified tracks budget+month pairs already alerted so each crossing
	// produces exactly one email per process lifetime.
	mu       sync.Mutex
	notified map[string]struct{}
}

// WorkerConfig holds configuration for the alerts worker.
type WorkerConfig struct {
	PollInterval time.Duration
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 15 * time.Minute,
	}
}

// NewWorker creates a new alerts worker.
func NewWorker(
	users adapter.UserRepository,
	budgetStatus *budget.GetBudgetStatusUseCase,
	sender adapter.EmailSender,
	renderer *templates.Renderer,
	config WorkerConfig,
) *Worker {
	if config.PollInterval <= 0 {
		config.PollInterval = DefaultWorkerConfig().PollInterval
	}
	return &Worker{
		users:        users,
		budgetStatus: budgetStatus,
		sender:       sender,
		renderer:     renderer,
		pollInterval: config.PollInterval,
		now:          time.Now,
		notified:     make(map[string]struct{}),
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Budget alerts worker started", "poll_interval", w.pollInterval)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Check immediately on start, then on ticker
	w.checkAllUsers(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Budget alerts worker shutting down")
			return
		case <-ticker.C:
			w.checkAllUsers(ctx)
		}
	}
}

// checkAllUsers runs one alert pass over every opted-in user.
func (w *Worker) checkAllUsers(ctx context.Context) {
	users, err := w.users.FindWithBudgetAlertsEnabled(ctx)
	if err != nil {
		slog.Error("Failed to list users for budget alerts", "error", err)
		return
	}

	for _, user := range users {
		select {
		case <-ctx.Done():
			return
		default:
			w.checkUser(ctx, user)
		}
	}
}

// checkUser evaluates the current month's budgets for one user.
func (w *Worker) checkUser(ctx context.Context, user *entity.User) {
	month := w.now().UTC()

	output, err := w.budgetStatus.Execute(ctx, budget.GetBudgetStatusInput{
		UserID: user.ID,
		Month:  month,
	})
	if err != nil {
		slog.Error("Failed to compute budget status for alerts",
			"user_id", user.ID,
			"error", err,
		)
		return
	}

	for _, item := range output.BudgetStatus {
		if item.AlertLevel != entity.BudgetAlertExceeded {
			continue
		}
		if w.alreadyNotified(item.BudgetID, month) {
			continue
		}

		if err := w.sendAlert(ctx, user, item, month); err != nil {
			slog.Error("Failed to send budget alert email",
				"user_id", user.ID,
				"budget_id", item.BudgetID,
				"error", err,
			)
			continue
		}

		w.markNotified(item.BudgetID, month)
	}
}

// sendAlert renders and sends one budget alert email.
func (w *Worker) sendAlert(ctx context.Context, user *entity.User, item *budget.BudgetStatusItem, month time.Time) error {
	categoryName := entity.UncategorizedName
	if item.Category != nil {
		categoryName = item.Category.Name
	}

	html, text, err := w.renderer.Render("budget_alert", templates.BudgetAlertData{
		UserName:     user.Name,
		CategoryName: categoryName,
		Month:        month.Format("January 2006"),
		BudgetAmount: item.BudgetAmount.StringFixed(2),
		SpentAmount:  item.Spent.StringFixed(2),
		Percentage:   item.Percentage,
	})
	if err != nil {
		return fmt.Errorf("failed to render alert template: %w", err)
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      user.Email,
		Name:    user.Name,
		Subject: fmt.Sprintf("Budget exceeded: %s", categoryName),
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		return err
	}

	slog.Info("Budget alert email sent",
		"user_id", user.ID,
		"budget_id", item.BudgetID,
		"provider_id", result.ProviderID,
	)
	return nil
}

func (w *Worker) alreadyNotified(budgetID uuid.UUID, month time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.notified[notificationKey(budgetID, month)]
	return ok
}

func (w *Worker) markNotified(budgetID uuid.UUID, month time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.notified[notificationKey(budgetID, month)] = struct{}{}
}

func notificationKey(budgetID uuid.UUID, month time.Time) string {
	return fmt.Sprintf("%s|%s", budgetID, month.Format("2006-01"))
}

// CheckNow runs one alert pass immediately (useful for testing).
func (w *Worker) CheckNow(ctx context.Context) {
	w.checkAllUsers(ctx)
}
