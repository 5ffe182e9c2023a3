package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SnookieTejas/launch-access-forecast/internal/emoji"
	"github.com/SnookieTejas/launch-access-forecast/internal/forms"
	"github.com/SnookieTejas/launch-access-forecast/internal/ui/components"
)

const (
	labelEmail    = "Email"
	labelPassword = "Password"
)

type landingPage struct {
	kpi *components.KPIRotator

	login    forms.LoginForm
	email    *components.TextField
	password *components.TextField
	form     *components.Form

	request      forms.RequestAccessForm
	requestEmail *components.TextField
	requestOpen  bool
	requestSent  bool
}

func newLandingPage(m *Model) *landingPage {
	p := &landingPage{
		kpi:          components.NewKPIRotator(m.store.KPIs()),
		email:        components.NewTextField(labelEmail, "you@company.com", ""),
		password:     components.NewPasswordField(labelPassword, "Enter your password"),
		requestEmail: components.NewTextField(labelEmail, "you@company.com", ""),
	}
	p.email.OnChange = p.login.SetEmail
	p.password.OnChange = p.login.SetPassword
	p.requestEmail.OnChange = p.request.SetEmail
	p.form = components.NewForm(p.email, p.password)
	p.form.Width = 48
	return p
}

func (p *landingPage) typing() bool { return true }

func (p *landingPage) update(m *Model, msg tea.KeyMsg) tea.Cmd {
	if p.requestOpen {
		return p.updateRequest(m, msg)
	}

	switch msg.String() {
	case "ctrl+r":
		p.requestOpen = true
		p.requestSent = false
		return p.requestEmail.Focus()
	case "enter":
		return p.submit(m)
	}
	return p.form.Update(msg)
}

func (p *landingPage) submit(m *Model) tea.Cmd {
	errs := p.login.Submit()
	p.form.Errors = map[string]string{}
	if errs != nil {
		if msg := errs.Get(forms.FieldEmail); msg != "" {
			p.form.Errors[labelEmail] = msg
		}
		if msg := errs.Get(forms.FieldPassword); msg != "" {
			p.form.Errors[labelPassword] = msg
		}
		if _, ok := errs[forms.FieldEmail]; ok {
			return p.form.FocusLabel(labelEmail)
		}
		return p.form.FocusLabel(labelPassword)
	}

	m.log.Info("signed in as %s", p.login.Email)
	return m.beginTransition(m.ctrl.Login())
}

func (p *landingPage) updateRequest(m *Model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.cancelDelay(delayRequestAccess)
		p.closeRequest()
		return nil
	case "enter":
		if p.requestSent {
			return nil
		}
		if p.request.Submit() != "" {
			return nil
		}
		p.requestSent = true
		m.log.Info("access requested for %s", p.request.Email)
		return m.startDelay(delayRequestAccess, RequestAccessDelay)
	}
	if p.requestSent {
		return nil
	}
	return p.requestEmail.Update(msg)
}

// closeRequest hides the modal and clears it for the next open.
func (p *landingPage) closeRequest() {
	p.requestOpen = false
	p.requestSent = false
	p.request.Reset()
	p.requestEmail.SetValue("")
	p.requestEmail.Blur()
}

func (p *landingPage) view(m *Model) string {
	w, h := m.size()
	if p.requestOpen {
		return p.viewRequest(m, w, h)
	}

	brand := m.styles.Brand.Render(emoji.WithIcon("pill", "Launch Access Forecast"))
	tagline := m.styles.Muted.Render("Predict payer access and demand before launch")
	kpi := p.kpi.View()

	card := m.styles.Box.Width(52).Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Header.Render("Sign in"),
		"",
		p.form.View(0),
		m.styles.Muted.Render("enter sign in · tab next field · ctrl+r request access"),
	))

	return lipgloss.Place(w, h-1, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, brand, tagline, "", kpi, "", card))
}

func (p *landingPage) viewRequest(m *Model, w, h int) string {
	var body string
	if p.requestSent {
		body = m.styles.Success.Render(emoji.WithIcon("success", "Request sent")) + "\n" +
			m.styles.Muted.Render("We will get back to you at "+p.request.Email)
	} else {
		body = m.styles.Muted.Render("Enter your work email and we will reach out.") + "\n\n" +
			p.requestEmail.View(true)
		if err := p.request.Error(); err != "" {
			body += "\n" + m.styles.Error.Render(err)
		}
	}
	modal := components.Modal{
		Title:  emoji.WithIcon("mail", "Request Access"),
		Body:   body,
		Footer: "enter send · esc cancel",
		Width:  56,
	}
	return modal.Overlay(w, h-1)
}
