package helper

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"teatr_manager/config"
	"teatr_manager/constants"
	"teatr_manager/report"
	"teatr_manager/utils"

	"github.com/go-co-op/gocron/v2"
)

// ReportMailer renders the previous day's report and mails it.
type ReportMailer struct {
	Generator  *report.Generator
	ReportType string
	To         []string
	Now        func() time.Time
	Send       func(to []string, subject, body, filename string, pdf []byte) error
}

func NewReportMailer(gen *report.Generator) *ReportMailer {
	smtp := utils.LoadSMTPSettings()
	var to []string
	for _, addr := range strings.Split(config.Config("REPORT_MAIL_TO"), ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			to = append(to, addr)
		}
	}
	reportType := config.ConfigDefault("REPORT_MAIL_TYPE", constants.REPORT_SALES_GROUPED)
	if !utils.IsValidValueOfConstant(reportType, constants.REPORT_TYPES) {
		utils.Log.WithField("reportType", reportType).Warn("unknown REPORT_MAIL_TYPE, mailing sales_grouped")
		reportType = constants.REPORT_SALES_GROUPED
	}
	return &ReportMailer{
		Generator:  gen,
		ReportType: reportType,
		To:         to,
		Now:        time.Now,
		Send: func(to []string, subject, body, filename string, pdf []byte) error {
			return utils.SendReportEmail(smtp, to, subject, body, filename, pdf)
		},
	}
}

// Filter covers the whole calendar day before now.
func (m *ReportMailer) Filter(now time.Time) report.Filter {
	day := now.AddDate(0, 0, -1).Format("2006-01-02")
	return report.NewFilter(m.ReportType, day, day, "")
}

func (m *ReportMailer) Run(ctx context.Context) error {
	if len(m.To) == 0 {
		return fmt.Errorf("no report recipients configured")
	}
	now := m.Now()
	f := m.Filter(now)

	var buf bytes.Buffer
	res, err := m.Generator.Generate(ctx, &buf, f)
	if err != nil {
		return err
	}
	if res.Err != nil {
		utils.Log.WithError(res.Err).Warn("scheduled report rendered with an error")
	}

	subject := fmt.Sprintf("Theater report %s", f.FromDay())
	body := fmt.Sprintf("Report %s for %s. %d rows.", f.ReportType, f.FromDay(), res.Summary.Rows)
	return m.Send(m.To, subject, body, f.FileName(now), buf.Bytes())
}

// StartReportScheduler runs the mailer on the configured cron expression.
// The returned scheduler must be shut down by the caller.
func StartReportScheduler(m *ReportMailer, expr string) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	_, err = s.NewJob(
		gocron.CronJob(expr, false),
		gocron.NewTask(func() {
			if err := m.Run(context.Background()); err != nil {
				utils.Log.WithError(err).Error("scheduled report failed")
				return
			}
			utils.Log.WithField("recipients", len(m.To)).Info("scheduled report sent")
		}),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, fmt.Errorf("report job: %w", err)
	}
	s.Start()
	return s, nil
}
