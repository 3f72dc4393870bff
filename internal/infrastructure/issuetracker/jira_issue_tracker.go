package issuetracker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync/atomic"

	"concessionaria_xpto/internal/domain/entities"
	"concessionaria_xpto/internal/infrastructure/logger"
	"concessionaria_xpto/internal/usecase/interfaces"

	"github.com/andygrunwald/go-jira"
	"github.com/trivago/tgo/tcontainer"
	"go.uber.org/zap"
)

var ErrJiraNotConfigured = errors.New("jira issue tracker not configured")

// Config holds Jira connection settings.
//
// CustomFields maps a field name sent by the caller (e.g. proposal_number) to
// a Jira custom field id (e.g. customfield_10010).
type Config struct {
	BaseURL      string
	Username     string
	APIToken     string
	ProjectKey   string
	IssueType    string
	CustomFields map[string]string
}

// ConfigFromEnv reads JIRA_BASE_URL, JIRA_USERNAME, JIRA_API_TOKEN,
// JIRA_PROJECT_KEY, JIRA_ISSUE_TYPE and JIRA_CUSTOM_FIELDS
// (name=customfield_id pairs separated by commas).
func ConfigFromEnv() Config {
	cfg := Config{
		BaseURL:      os.Getenv("JIRA_BASE_URL"),
		Username:     os.Getenv("JIRA_USERNAME"),
		APIToken:     os.Getenv("JIRA_API_TOKEN"),
		ProjectKey:   os.Getenv("JIRA_PROJECT_KEY"),
		IssueType:    os.Getenv("JIRA_ISSUE_TYPE"),
		CustomFields: map[string]string{},
	}
	if cfg.IssueType == "" {
		cfg.IssueType = "Task"
	}
	for _, pair := range strings.Split(os.Getenv("JIRA_CUSTOM_FIELDS"), ",") {
		name, id, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if ok && name != "" && id != "" {
			cfg.CustomFields[strings.TrimSpace(name)] = strings.TrimSpace(id)
		}
	}
	return cfg
}

// JiraIssueTracker opens back-office issues for new sales orders.
type JiraIssueTracker struct {
	cfg      Config
	client   *jira.Client
	mockMode bool
	mockSeq  atomic.Int64
}

var _ interfaces.IIssueTracker = (*JiraIssueTracker)(nil)

func NewJiraIssueTracker(cfg Config) (*JiraIssueTracker, error) {
	if isIssueTrackerMockEnabled() {
		logger.L().Info("[issue][tracker] mock mode enabled")
		return &JiraIssueTracker{cfg: cfg, mockMode: true}, nil
	}
	if cfg.BaseURL == "" || cfg.ProjectKey == "" {
		return nil, ErrJiraNotConfigured
	}

	tp := jira.BasicAuthTransport{
		Username: cfg.Username,
		Password: cfg.APIToken,
	}
	client, err := jira.NewClient(tp.Client(), cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create Jira client: %w", err)
	}
	logger.L().Info("[issue][tracker] Jira client initialized", zap.String("project", cfg.ProjectKey))
	return &JiraIssueTracker{cfg: cfg, client: client}, nil
}

func (t *JiraIssueTracker) CreateIssue(ctx context.Context, title string, fields map[string]string, requester entities.ActingUser) (string, error) {
	if t.mockMode {
		key := fmt.Sprintf("MOCK-%d", t.mockSeq.Add(1))
		logger.L().Info("[issue][tracker] mock issue created", zap.String("issue_key", key), zap.String("title", title))
		return key, nil
	}
	if t.client == nil {
		return "", ErrJiraNotConfigured
	}

	issue := t.buildIssue(title, fields, requester)
	created, _, err := t.client.Issue.CreateWithContext(ctx, issue)
	if err != nil {
		logger.L().Error("[issue][tracker] create failed", zap.String("title", title), zap.Error(err))
		return "", fmt.Errorf("failed to create issue: %w", err)
	}
	logger.L().Info("[issue][tracker] issue created", zap.String("issue_key", created.Key))
	return created.Key, nil
}

func (t *JiraIssueTracker) buildIssue(title string, fields map[string]string, requester entities.ActingUser) *jira.Issue {
	issue := &jira.Issue{
		Fields: &jira.IssueFields{
			Project:     jira.Project{Key: t.cfg.ProjectKey},
			Type:        jira.IssueType{Name: t.cfg.IssueType},
			Summary:     title,
			Description: describe(fields, requester),
			Labels:      []string{"sales-order"},
		},
	}

	custom := tcontainer.NewMarshalMap()
	for name, value := range fields {
		if id, ok := t.cfg.CustomFields[name]; ok {
			custom[id] = value
		}
	}
	if len(custom) > 0 {
		issue.Fields.Unknowns = custom
	}
	return issue
}

func describe(fields map[string]string, requester entities.ActingUser) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "Requested by %s (%s)\n\n", requester.Name, requester.ID)
	for _, name := range names {
		fmt.Fprintf(&b, "* %s: %s\n", name, fields[name])
	}
	return b.String()
}

func isIssueTrackerMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("ISSUE_TRACKER_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
