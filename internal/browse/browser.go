package browse

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/amishk599/careerconnect/internal/assistant"
	"github.com/amishk599/careerconnect/internal/filter"
	"github.com/amishk599/careerconnect/internal/model"
)

// Lines per job item in the list view (title + subtitle + blank separator).
const jobItemHeight = 3

type viewState int

const (
	viewList viewState = iota
	viewDetail
)

// CoverLetterGenerator drafts a cover letter. *ai.Generator satisfies it.
type CoverLetterGenerator interface {
	CoverLetter(ctx context.Context, jobTitle, company, skills string) string
}

// draftReadyMsg carries a finished draft for the assistant that started it.
type draftReadyMsg struct {
	draft *assistant.Assistant
	text  string
}

type appliedMsg struct {
	app model.Application
	err error
}

type browserModel struct {
	ctx     context.Context
	opts    Options
	jobType string
	jobs    []model.Job
	visible []model.Job

	search    textinput.Model
	searching bool
	list      viewport.Model
	cursor    int
	width     int
	height    int
	ready     bool

	view      viewState
	detailJob model.Job
	detail    viewport.Model

	draft    *assistant.Assistant
	accepted string
	spinner  spinner.Model
	editor   textarea.Model
	editing  bool
	notice   string
	errMsg   string

	wantQuit bool
}

func newBrowser(ctx context.Context, jobs []model.Job, jobType string, opts Options) browserModel {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search by job title or company..."
	search.CharLimit = 80

	editor := textarea.New()
	editor.ShowLineNumbers = false

	m := browserModel{
		ctx:     ctx,
		opts:    opts,
		jobType: jobType,
		jobs:    jobs,
		search:  search,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle)),
		editor:  editor,
	}
	m.applyFilter()
	return m
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case spinner.TickMsg:
		if m.draft == nil || m.draft.State() != assistant.StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refreshDetail()
		return m, cmd

	case draftReadyMsg:
		// Drafts for a job the user already left are dropped.
		if m.draft == nil || msg.draft != m.draft {
			return m, nil
		}
		if err := m.draft.Finish(msg.text); err != nil {
			m.errMsg = err.Error()
		}
		m.refreshDetail()
		return m, nil

	case appliedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("application failed: %v", msg.err)
		} else {
			m.errMsg = ""
			m.notice = fmt.Sprintf("Applied to %s at %s", msg.app.JobTitle, msg.app.CompanyName)
		}
		m.refreshDetail()
		return m, nil

	case tea.KeyMsg:
		if m.view == viewDetail {
			if m.editing {
				return m.updateEditor(msg)
			}
			return m.updateDetailView(msg)
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateListView(msg)
	}

	return m, nil
}

func (m browserModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.wantQuit = true
		return m, tea.Quit
	case "enter", "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m browserModel) updateListView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.wantQuit = true
		return m, tea.Quit
	case "esc", "b":
		m.wantQuit = false
		return m, tea.Quit
	case "/":
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd
	case "up", "k":
		m.moveCursor(-1)
		return m, nil
	case "down", "j":
		m.moveCursor(1)
		return m, nil
	case "enter":
		return m.openDetailView()
	}

	// Forward other keys (pgup/pgdn/home/end) to the list viewport.
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m browserModel) updateDetailView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.wantQuit = true
		return m, tea.Quit
	case "esc", "backspace":
		m.view = viewList
		m.draft = nil
		return m, nil
	case "g":
		return m.startDraft()
	case "t":
		if m.draft.State() != assistant.StateGenerated {
			return m, nil
		}
		if err := m.draft.Retry(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		return m.startDraft()
	case "a":
		text, err := m.draft.Accept()
		if err != nil {
			return m, nil
		}
		m.accepted = text
		m.notice = "Cover letter accepted"
		m.refreshDetail()
		return m, nil
	case "e":
		if m.draft.State() != assistant.StateGenerated {
			return m, nil
		}
		m.editing = true
		m.editor.SetWidth(max(m.width-6, 20))
		m.editor.SetHeight(max(m.height-8, 5))
		m.editor.SetValue(m.draft.Content())
		cmd := m.editor.Focus()
		return m, cmd
	case "s":
		if m.opts.Applications == nil {
			return m, nil
		}
		return m, m.applyCmd(m.detailJob, m.accepted)
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m browserModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.wantQuit = true
		return m, tea.Quit
	case "esc":
		m.editing = false
		m.editor.Blur()
		return m, nil
	case "ctrl+s":
		if err := m.draft.Edit(m.editor.Value()); err != nil {
			m.errMsg = err.Error()
		}
		m.editing = false
		m.editor.Blur()
		m.refreshDetail()
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// startDraft begins a generation for the open job. A press while one is
// loading is ignored, like a disabled button.
func (m browserModel) startDraft() (tea.Model, tea.Cmd) {
	if m.opts.Generator == nil {
		m.errMsg = "cover letter drafting is not available"
		m.refreshDetail()
		return m, nil
	}
	if err := m.draft.Start(); err != nil {
		// ErrPending while loading, or the letter was already accepted.
		return m, nil
	}
	m.errMsg = ""
	m.notice = ""
	m.refreshDetail()
	return m, tea.Batch(m.spinner.Tick, m.draftCmd(m.detailJob))
}

func (m browserModel) draftCmd(job model.Job) tea.Cmd {
	ctx, gen, skills, draft := m.ctx, m.opts.Generator, m.opts.Skills, m.draft
	return func() tea.Msg {
		return draftReadyMsg{draft: draft, text: gen.CoverLetter(ctx, job.Title, job.Company, skills)}
	}
}

func (m browserModel) applyCmd(job model.Job, coverLetter string) tea.Cmd {
	ctx, apps, email := m.ctx, m.opts.Applications, m.opts.ApplicantEmail
	return func() tea.Msg {
		app := model.Application{
			ID:             uuid.NewString(),
			JobID:          job.ID,
			JobTitle:       job.Title,
			CompanyName:    job.Company,
			Status:         model.StatusPending,
			AppliedDate:    time.Now().Format("2006-01-02"),
			CoverLetter:    coverLetter,
			ApplicantEmail: email,
		}
		return appliedMsg{app: app, err: apps.AddApplication(ctx, app)}
	}
}

func (m *browserModel) applyFilter() {
	m.visible = filter.FilterJobs(m.jobs, m.search.Value(), m.jobType)
	m.cursor = clamp(m.cursor, 0, max(len(m.visible)-1, 0))
	m.recalcContent()
}

func (m *browserModel) moveCursor(delta int) {
	m.cursor = clamp(m.cursor+delta, 0, max(len(m.visible)-1, 0))
	m.recalcContent()
	m.ensureCursorVisible()
}

func (m *browserModel) ensureCursorVisible() {
	cursorTop := m.cursor * jobItemHeight
	cursorBottom := cursorTop + jobItemHeight - 1

	if cursorTop < m.list.YOffset {
		m.list.SetYOffset(cursorTop)
	} else if cursorBottom >= m.list.YOffset+m.list.Height {
		m.list.SetYOffset(cursorBottom - m.list.Height + 1)
	}
}

func (m browserModel) openDetailView() (tea.Model, tea.Cmd) {
	if len(m.visible) == 0 {
		return m, nil
	}
	m.view = viewDetail
	m.detailJob = m.visible[m.cursor]
	m.draft = assistant.New()
	m.accepted = ""
	m.notice = ""
	m.errMsg = ""
	m.detail = viewport.New(max(m.width-4, 20), max(m.height-4, 5))
	m.refreshDetail()
	return m, nil
}

func (m *browserModel) recalcLayout() {
	// Header, search line, border top/bottom and status bar.
	width := max(m.width-2, 20)
	height := max(m.height-5, 5)

	if !m.ready {
		m.list = viewport.New(width, height)
		m.ready = true
	} else {
		m.list.Width = width
		m.list.Height = height
	}
	if m.view == viewDetail {
		m.detail.Width = max(m.width-4, 20)
		m.detail.Height = max(m.height-4, 5)
	}
	m.recalcContent()
	m.refreshDetail()
}

func (m *browserModel) recalcContent() {
	m.list.SetContent(renderJobs(m.visible, m.cursor))
}

func (m *browserModel) refreshDetail() {
	if m.view != viewDetail {
		return
	}
	m.detail.SetContent(m.renderDetail())
}

func (m browserModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.view == viewDetail {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m browserModel) viewList() string {
	header := headerStyle.Render(fmt.Sprintf("%s Jobs (%d of %d)", m.jobType, len(m.visible), len(m.jobs)))
	list := borderStyle.Width(m.list.Width).Render(m.list.View())

	statusText := " ↑/↓ cursor  / search  Enter detail  Esc back  q quit"
	if m.searching {
		statusText = " type to filter  Enter/Esc done"
	}
	statusBar := statusBarStyle.Width(m.width).Render(statusText)

	return header + "\n" + m.search.View() + "\n" + list + "\n" + statusBar
}

func (m browserModel) viewDetail() string {
	title := detailTitleStyle.Render("Job Details")

	if m.editing {
		statusBar := statusBarStyle.Width(m.width).Render(" ctrl+s save  esc cancel")
		return title + "\n" + borderStyle.Render(m.editor.View()) + "\n" + statusBar
	}

	content := borderStyle.Width(max(m.width-2, 20)).Render(m.detail.View())
	statusBar := statusBarStyle.Width(m.width).Render(m.detailHints())
	return title + "\n" + content + "\n" + statusBar
}

func (m browserModel) detailHints() string {
	hints := []string{}
	switch m.draft.State() {
	case assistant.StateIdle:
		hints = append(hints, "g draft cover letter")
	case assistant.StateGenerated:
		hints = append(hints, "a accept", "t try again", "e edit")
	}
	if m.opts.Applications != nil {
		hints = append(hints, "s apply")
	}
	hints = append(hints, "esc back", "↑/↓ scroll", "q quit")
	return " " + strings.Join(hints, "  ")
}

func (m browserModel) renderDetail() string {
	j := m.detailJob
	var b strings.Builder

	addField := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(detailLabelStyle.Render(label))
		b.WriteString(value)
		b.WriteByte('\n')
	}

	addField("Title", j.Title)
	addField("Company", j.Company)
	addField("Location", j.Location)
	addField("Type", string(j.Type))
	addField("Salary", j.SalaryRange)
	addField("Posted", j.PostedAt)
	if j.ApplicantsCount > 0 {
		addField("Applicants", fmt.Sprintf("%d", j.ApplicantsCount))
	}
	if len(j.Requirements) > 0 {
		addField("Requirements", strings.Join(j.Requirements, ", "))
	}

	wrapWidth := max(m.width-8, 20)
	divider := func(label string) string {
		fill := strings.Repeat("─", max(wrapWidth-lipgloss.Width(label), 3))
		return dividerStyle.Render(label + fill)
	}

	b.WriteByte('\n')
	b.WriteString(divider("── Description ") + "\n\n")
	b.WriteString(bodyStyle.Render(wordWrap(j.Description, wrapWidth)) + "\n")

	b.WriteByte('\n')
	b.WriteString(divider("── Cover Letter ") + "\n\n")
	switch m.draft.State() {
	case assistant.StateIdle:
		b.WriteString(italicHintStyle.Render("  press g to draft a cover letter with AI") + "\n")
	case assistant.StateLoading:
		b.WriteString("  " + m.spinner.View() + " drafting cover letter...\n")
	case assistant.StateGenerated, assistant.StateAccepted:
		b.WriteString(bodyStyle.Render(wrapParagraphs(m.draft.Content(), wrapWidth)) + "\n")
	}

	if m.notice != "" {
		b.WriteByte('\n')
		b.WriteString(noticeStyle.Render("✓ "+m.notice) + "\n")
	}
	if m.errMsg != "" {
		b.WriteByte('\n')
		b.WriteString(errorStyle.Render("⚠ "+m.errMsg) + "\n")
	}

	return b.String()
}

// RunBrowser launches the listing browser for jobs of one type. It returns
// wantQuit=true if the user pressed q/ctrl+c, false if they pressed esc to
// return to the type picker.
func RunBrowser(ctx context.Context, jobs []model.Job, jobType string, opts Options) (bool, error) {
	p := tea.NewProgram(newBrowser(ctx, jobs, jobType, opts), tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return false, err
	}
	final := result.(browserModel)
	return final.wantQuit, nil
}
