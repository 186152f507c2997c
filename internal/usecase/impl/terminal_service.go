package impl

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"vplmon/config"
	"vplmon/internal/domain/constants"
	"vplmon/internal/domain/entity"
	domainerrors "vplmon/internal/domain/errors"
	"vplmon/internal/domain/repository"
	"vplmon/internal/errors"
	"vplmon/internal/usecase"

	"go.uber.org/fx"
)

// TerminalServiceParams holds dependencies for the terminal service, injected by Fx.
type TerminalServiceParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	AuditLog repository.AuditLogRepository `optional:"true"`
}

type terminalService struct {
	mu     sync.RWMutex
	panels map[entity.Category][]entity.LogEntry

	maxEntries     int
	persistTimeout time.Duration
	auditLog       repository.AuditLogRepository
	logger         *slog.Logger
	now            func() time.Time

	inflight sync.WaitGroup
}

// NewTerminalService creates the in-memory log panels.
func NewTerminalService(params TerminalServiceParams) usecase.TerminalUsecase {
	panels := make(map[entity.Category][]entity.LogEntry, len(entity.PanelCategories))
	for _, c := range entity.PanelCategories {
		panels[c] = nil
	}

	return &terminalService{
		panels:         panels,
		maxEntries:     params.Config.Terminal.MaxEntries,
		persistTimeout: params.Config.Terminal.PersistTimeout,
		auditLog:       params.AuditLog,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (s *terminalService) Append(category entity.Category, text string) entity.LogEntry {
	if !slices.Contains(entity.PanelCategories, category) {
		category = entity.CategoryGeneral
	}

	entry := entity.LogEntry{
		Category:  category,
		Text:      text,
		Timestamp: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	panel := append(s.panels[category], entry)
	if s.maxEntries > 0 && len(panel) > s.maxEntries {
		overflow := len(panel) - s.maxEntries
		panel = append(panel[:0:0], panel[overflow:]...)
	}
	s.panels[category] = panel

	return entry
}

func (s *terminalService) Clear(category entity.Category) {
	if !slices.Contains(entity.PanelCategories, category) {
		return
	}

	s.mu.Lock()
	s.panels[category] = nil
	s.mu.Unlock()

	s.Append(category, constants.TerminalCleared)
}

func (s *terminalService) Entries(category entity.Category) []entity.LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	panel := s.panels[category]
	out := make([]entity.LogEntry, len(panel))
	copy(out, panel)

	return out
}

func (s *terminalService) Export(format entity.ExportFormat, categories ...entity.Category) ([]byte, error) {
	if len(categories) == 0 {
		categories = entity.PanelCategories
	}

	switch format {
	case entity.ExportFormatCSV:
		return s.exportCSV(categories), nil
	case entity.ExportFormatText:
		return s.exportText(categories), nil
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unsupported export format: " + string(format))
	}
}

// exportCSV always quotes the message column; embedded quotes are doubled.
func (s *terminalService) exportCSV(categories []entity.Category) []byte {
	var buf bytes.Buffer
	buf.WriteString("Type,Message\n")

	for _, category := range categories {
		for _, entry := range s.Entries(category) {
			buf.WriteString(category.Label())
			buf.WriteString(`,"`)
			buf.WriteString(strings.ReplaceAll(entry.Text, `"`, `""`))
			buf.WriteString("\"\n")
		}
	}

	return buf.Bytes()
}

func (s *terminalService) exportText(categories []entity.Category) []byte {
	var buf bytes.Buffer

	for i, category := range categories {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString("=== " + category.Label() + " ===\n")
		for _, entry := range s.Entries(category) {
			buf.WriteString("[" + entry.Timestamp.Format(time.RFC3339) + "] " + entry.Text + "\n")
		}
	}

	return buf.Bytes()
}

func (s *terminalService) PersistRemote(entry entity.LogEntry) {
	if s.auditLog == nil {
		return
	}

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		defer func() {
			if r := recover(); r != nil {
				s.logger.Warn("Remote log persistence panicked", slog.Any("error", errors.FromPanic(r)))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), s.persistTimeout)
		defer cancel()

		if err := s.auditLog.Append(ctx, entry); err != nil {
			s.logger.Warn("Failed to persist log entry remotely",
				slog.String("category", entry.Category.String()),
				slog.Any("error", domainerrors.NewPersistenceError("append audit log", err)),
			)
		}
	}()
}

func (s *terminalService) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "waiting for remote log writes")
	}
}
