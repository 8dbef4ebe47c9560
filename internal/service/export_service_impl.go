package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/alexanderramin/trackr/internal/repository"
	"github.com/alexanderramin/trackr/internal/stats"
)

const missingCell = "-"

type exportService struct {
	sessions repository.SessionRepo
}

func NewExportService(sessions repository.SessionRepo) ExportService {
	return &exportService{sessions: sessions}
}

func (e *exportService) WriteCSV(ctx context.Context, userID string, w io.Writer) error {
	sessions, err := e.sessions.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("loading sessions for export: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Start Time", "End Time", "Duration", "Group Name"}); err != nil {
		return fmt.Errorf("writing export header: %w", err)
	}

	for _, s := range sessions {
		endCell, durationCell, groupCell := missingCell, missingCell, missingCell
		if s.EndTime != nil {
			endCell = s.EndTime.Local().Format("15:04:05")
		}
		if s.Duration != nil {
			durationCell = stats.FormatHMS(*s.Duration)
		}
		if s.Group != "" {
			groupCell = s.Group
		}
		row := []string{
			s.StartTime.Local().Format("2006-01-02"),
			s.StartTime.Local().Format("15:04:05"),
			endCell,
			durationCell,
			groupCell,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing export row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing export: %w", err)
	}
	return nil
}
