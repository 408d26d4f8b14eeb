package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/scholarhub/internal/auth"
	"github.com/theirongolddev/scholarhub/internal/budget"
	"github.com/theirongolddev/scholarhub/internal/config"
	"github.com/theirongolddev/scholarhub/internal/ledger"
	"github.com/theirongolddev/scholarhub/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	modeSignIn = "Sign in"
	modeSignUp = "Create account"
)

type gateValues struct {
	mode     string
	email    string
	password string
	confirm  string
}

type expenseValues struct {
	description string
	category    string
	amount      string
	date        string
}

type planValues struct {
	total  string
	allocs []string // indexed like model.Categories
}

func (v *planValues) draft(base budget.Draft) budget.Draft {
	d := budget.SetTotalBudget(base, v.total)
	for i, c := range model.Categories {
		d = budget.SetCategoryAllocation(d, c, v.allocs[i])
	}
	return d
}

func required(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

// ─── Sign-in gate ───────────────────────────────────────────────

func (a *App) openGate(email, failure string) tea.Cmd {
	v := &gateValues{mode: modeSignIn, email: email}
	if a.gate != nil {
		v.mode = a.gate.mode
	}
	a.gate = v

	fields := []huh.Field{}
	if failure != "" {
		fields = append(fields, huh.NewNote().Title("Could not sign in").Description(failure))
	}
	fields = append(fields,
		huh.NewSelect[string]().
			Title("Welcome").
			Options(huh.NewOptions(modeSignIn, modeSignUp)...).
			Value(&v.mode),
		huh.NewInput().
			Title("Email").
			Placeholder("you@university.edu").
			Value(&v.email).
			Validate(required("email")),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&v.password).
			Validate(required("password")),
	)

	f := huh.NewForm(
		huh.NewGroup(fields...),
		huh.NewGroup(
			huh.NewInput().
				Title("Confirm password").
				EchoMode(huh.EchoModePassword).
				Value(&v.confirm),
		).WithHideFunc(func() bool { return v.mode != modeSignUp }),
	)
	return a.showForm(formGate, f)
}

func (a App) finishGate() (tea.Model, tea.Cmd) {
	v := a.gate

	var id auth.Identity
	var err error
	if v.mode == modeSignUp {
		id, err = auth.Signup(v.email, v.password, v.confirm)
	} else {
		id, err = auth.Login(v.email, v.password)
	}
	if err != nil {
		return a, a.openGate(v.email, err.Error())
	}

	a.sess.SignIn(id)
	a.gate = nil
	a.setFlash("Welcome, "+id.Email, false)

	if a.cfg.Profile.Email != id.Email {
		a.cfg.Profile.Email = id.Email
		if err := config.Save(a.cfg); err != nil {
			a.log.Warn("remembering email", zap.Error(err))
		}
	}
	return a, nil
}

// ─── Add expense ────────────────────────────────────────────────

func (a *App) openExpenseForm() tea.Cmd {
	v := &expenseValues{category: string(model.CategoryFood)}
	a.expense = v

	labels := make([]string, len(model.Categories))
	for i, c := range model.Categories {
		labels[i] = string(c)
	}

	f := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Description").
				Placeholder("Lunch at cafeteria").
				Value(&v.description).
				Validate(required("description")),
			huh.NewSelect[string]().
				Title("Category").
				Options(huh.NewOptions(labels...)...).
				Value(&v.category),
			huh.NewInput().
				Title("Amount").
				Placeholder("250").
				Value(&v.amount).
				Validate(validAmount),
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD, leave empty for today").
				Value(&v.date),
		),
	)
	return a.showForm(formExpense, f)
}

func validAmount(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("amount is required")
	}
	if _, err := model.ParseAmount(s); err != nil {
		if errors.Is(err, model.ErrAmountRange) {
			return errors.New("amount is too large or too precise")
		}
		return errors.New("amount must be a number")
	}
	return nil
}

func (a App) finishExpense() (tea.Model, tea.Cmd) {
	v := a.expense
	a.expense = nil

	exp, err := a.sess.AddExpense(ledger.Candidate{
		Date:        v.date,
		Description: v.description,
		Category:    v.category,
		Amount:      v.amount,
	})
	if err != nil {
		a.setFlash(err.Error(), true)
		return a, nil
	}
	a.setFlash(fmt.Sprintf("Added %s %s", exp.Description, a.money(exp.Amount)), false)
	return a, nil
}

// ─── Edit budget plan ───────────────────────────────────────────

func (a *App) openPlanForm() tea.Cmd {
	base := a.sess.EditPlan()
	v := &planValues{
		total:  base.TotalBudget.String(),
		allocs: make([]string, len(model.Categories)),
	}
	for i, c := range model.Categories {
		v.allocs[i] = base.Categories[c].String()
	}
	a.plan = v

	totals := []huh.Field{
		huh.NewInput().Title("Total budget").Value(&v.total),
	}
	allocs := make([]huh.Field, 0, len(model.Categories))
	for i, c := range model.Categories {
		allocs = append(allocs, huh.NewInput().Title(string(c)).Inline(true).Value(&v.allocs[i]))
	}

	remaining := func() decimal.Decimal {
		return budget.RemainingToAllocate(v.draft(base))
	}
	money := a.money

	var save bool
	f := huh.NewForm(
		huh.NewGroup(totals...),
		huh.NewGroup(allocs...).Description("Amounts that are not numbers count as 0."),
		huh.NewGroup(
			huh.NewNote().
				Title("Left to allocate").
				DescriptionFunc(func() string {
					r := remaining()
					if r.IsNegative() {
						return fmt.Sprintf("%s (over-allocated)", money(r))
					}
					return money(r)
				}, v),
			huh.NewConfirm().
				Title("Save plan?").
				Value(&save).
				Validate(func(bool) error {
					if r := remaining(); r.IsNegative() {
						return fmt.Errorf("over-allocated by %s", money(r.Neg()))
					}
					return nil
				}),
		),
	)
	a.planSave = &save
	return a.showForm(formPlan, f)
}

func (a App) finishPlan() (tea.Model, tea.Cmd) {
	v := a.plan
	save := a.planSave != nil && *a.planSave
	a.plan, a.planSave = nil, nil

	if !save {
		a.setFlash("Plan unchanged", false)
		return a, nil
	}

	d := v.draft(a.sess.EditPlan())
	if _, err := a.sess.CommitPlan(d); err != nil {
		a.setFlash(err.Error(), true)
		return a, nil
	}
	a.setFlash("Budget plan saved", false)
	return a, nil
}
