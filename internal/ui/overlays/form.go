package overlays

import (
	"errors"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/anomredux/tokencalc/internal/domain"
	"github.com/anomredux/tokencalc/internal/i18n"
	"github.com/anomredux/tokencalc/internal/theme"
	"github.com/anomredux/tokencalc/internal/tokens"
)

// CalculationSubmittedMsg carries the parameters entered in the form.
type CalculationSubmittedMsg struct {
	Params domain.Parameters
}

// formValues holds the raw field text; huh binds to strings.
type formValues struct {
	model       string
	inputPrice  string
	outputPrice string
	cachedPrice string
	inputText   string
	outputText  string
	quantity    string
	markup      string
	credit      string
}

// FormOverlay is the new-calculation form. Range checks are left to the
// pricing validator; the form only rejects text that is not a number.
type FormOverlay struct {
	form     *huh.Form
	values   *formValues
	animTick uint
}

func NewFormOverlay(models []string, initial domain.Parameters) *FormOverlay {
	v := &formValues{
		model:       initial.Model,
		inputPrice:  numberField(initial.InputTokenPrice),
		outputPrice: numberField(initial.OutputTokenPrice),
		cachedPrice: numberField(initial.CachedTokenPrice),
		inputText:   initial.InputText,
		outputText:  initial.OutputText,
		quantity:    numberField(initial.Quantity),
		markup:      numberField(initial.Resale.Markup),
		credit:      numberField(initial.Resale.CreditValue),
	}
	if v.quantity == "" {
		v.quantity = "1"
	}

	options := []huh.Option[string]{huh.NewOption(i18n.T("form_custom"), "")}
	for _, m := range models {
		options = append(options, huh.NewOption(m, m))
	}

	prices := huh.NewGroup(
		huh.NewSelect[string]().
			Title(i18n.T("form_model")).
			Options(options...).
			Value(&v.model),
		huh.NewInput().Title(i18n.T("form_input_price")).Placeholder("3").Validate(optionalNumber).Value(&v.inputPrice),
		huh.NewInput().Title(i18n.T("form_output_price")).Placeholder("15").Validate(optionalNumber).Value(&v.outputPrice),
		huh.NewInput().Title(i18n.T("form_cached_price")).Placeholder("0.3").Validate(optionalNumber).Value(&v.cachedPrice),
	).Title(i18n.T("form_prices"))

	texts := huh.NewGroup(
		huh.NewText().Title(i18n.T("form_input_text")).CharLimit(0).Lines(4).
			DescriptionFunc(v.inputTokens, &v.inputText).
			Value(&v.inputText),
		huh.NewText().Title(i18n.T("form_output_text")).CharLimit(0).Lines(4).
			DescriptionFunc(v.outputTokens, &v.outputText).
			Value(&v.outputText),
	).Title(i18n.T("form_texts"))

	volume := huh.NewGroup(
		huh.NewInput().Title(i18n.T("form_quantity")).Placeholder("1").Validate(optionalNumber).Value(&v.quantity),
		huh.NewInput().Title(i18n.T("form_markup")).Placeholder("0").Validate(optionalNumber).Value(&v.markup),
		huh.NewInput().Title(i18n.T("form_credit_value")).Placeholder("1").Validate(optionalNumber).Value(&v.credit),
	).Title(i18n.T("form_volume"))

	form := huh.NewForm(prices, texts, volume).
		WithWidth(60).
		WithShowHelp(false)

	return &FormOverlay{form: form, values: v}
}

// tokenCount is the live estimate shown under a sample text field.
func tokenCount(text string) string {
	return i18n.Tf("form_token_count", humanize.Comma(int64(tokens.Estimate(text))))
}

func (v *formValues) inputTokens() string { return tokenCount(v.inputText) }
func (v *formValues) outputTokens() string { return tokenCount(v.outputText) }

func numberField(v float64) string {
	if v == 0 || math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func optionalNumber(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return errors.New(i18n.T("form_not_a_number"))
	}
	return nil
}

// parseField maps empty text to empty and anything unparsable to NaN so the
// validator can report it.
func parseField(s string, empty float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return empty
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func (f *FormOverlay) SetAnimTick(tick uint) { f.animTick = tick }

func (f *FormOverlay) Init() tea.Cmd {
	return f.form.Init()
}

// Parameters converts the current field values.
func (f *FormOverlay) Parameters() domain.Parameters {
	v := f.values
	return domain.Parameters{
		Model:            v.model,
		InputTokenPrice:  parseField(v.inputPrice, 0),
		OutputTokenPrice: parseField(v.outputPrice, 0),
		CachedTokenPrice: parseField(v.cachedPrice, 0),
		InputText:        v.inputText,
		OutputText:       v.outputText,
		Quantity:         parseField(v.quantity, math.NaN()),
		Resale: domain.ResaleSettings{
			Markup:      parseField(v.markup, 0),
			CreditValue: parseField(v.credit, 0),
		}.Normalized(),
	}
}

// Update forwards msg to the form. It reports true once the form is
// submitted or cancelled; a submission also emits CalculationSubmittedMsg.
func (f *FormOverlay) Update(msg tea.Msg) (bool, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		return true, nil
	}

	model, cmd := f.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		f.form = form
	}

	switch f.form.State {
	case huh.StateCompleted:
		params := f.Parameters()
		return true, tea.Batch(cmd, func() tea.Msg { return CalculationSubmittedMsg{Params: params} })
	case huh.StateAborted:
		return true, cmd
	}
	return false, cmd
}

func (f *FormOverlay) Render(width, height int) string {
	bg := theme.ColorCardBg
	title := theme.AnimatedGradientText(i18n.T("form_title"), f.animTick, bg)
	help := lipgloss.NewStyle().Foreground(theme.ColorMutedText).Render(i18n.T("form_help"))

	content := title + "\n\n" + f.form.View() + "\n\n" + help
	return theme.CardStyle.
		Width(min(66, width-4)).
		MaxHeight(height).
		Render(content)
}
