package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"rincon-reservas/internal/domain/payment"
	"rincon-reservas/internal/domain/pricing"
	"rincon-reservas/internal/domain/reservation"
	"rincon-reservas/internal/infra/intakeclient"
	"rincon-reservas/internal/pkg/clock"
	"rincon-reservas/internal/pkg/config"
	"rincon-reservas/internal/pkg/errs"
)

const caracasOffset = -4 * 60 * 60

var ErrInvalidDraft = errs.New("reservation draft has validation errors")

type options struct {
	Server      string
	DraftPath   string
	Category    string
	ReceiptPath string
	Reference   string
	Timeout     time.Duration
}

type cliEnv struct {
	Business config.BusinessConfig
	Pricing  config.PricingConfig
}

func run(ctx context.Context, opts options, env cliEnv, out io.Writer) error {
	fields, err := loadDraft(opts.DraftPath)
	if err != nil {
		return err
	}

	category, err := reservation.ParseCategory(opts.Category)
	if err != nil {
		return err
	}
	rules, err := reservation.Rules(category)
	if err != nil {
		return err
	}

	client := intakeclient.New(opts.Server, opts.Timeout)
	rate, err := client.ExchangeRate(ctx)
	if err != nil {
		rate = pricing.EffectiveRate(env.Pricing.FallbackRate)
		fmt.Fprintf(out, "Tasa BCV no disponible, usando tasa de respaldo %s\n", pricing.FormatRate(rate))
	}

	form := reservation.NewFormController(rules, reservation.FormOptions{
		Location:      clock.LoadLocation(env.Business.TimeZone, caracasOffset),
		EntryPriceUSD: env.Pricing.EntryPriceUSD,
		TaxRate:       env.Pricing.TaxRate,
		ExchangeRate:  rate,
	})
	if err := applyDraft(form, fields); err != nil {
		return err
	}

	flow := payment.NewFlow(form, client, reservation.ContactInfo{
		WhatsAppNumber: env.Business.WhatsAppNumber,
		Email:          env.Business.ContactEmail,
		Phone:          env.Business.ContactPhone,
	})

	fieldErrs, err := flow.ProceedToPayment()
	if err != nil {
		return err
	}
	if fieldErrs.HasErrors() {
		fmt.Fprintln(out, "Corrige los siguientes campos:")
		for _, name := range fieldErrs.Fields() {
			fmt.Fprintf(out, "  %s: %s\n", name, fieldErrs[name])
		}
		return ErrInvalidDraft
	}

	step := flow.Payment()
	printPaymentInstructions(out, step)

	step.SetReference(opts.Reference)
	if opts.ReceiptPath != "" {
		data, err := os.ReadFile(opts.ReceiptPath)
		if err != nil {
			return errs.Wrap(err, "read receipt")
		}
		if err := step.AttachReceipt(filepath.Base(opts.ReceiptPath), data); err != nil {
			return errs.Wrap(err, step.LastError())
		}
	}

	view, err := flow.SubmitPayment(ctx)
	if err != nil {
		return errs.Wrap(err, step.LastError())
	}
	printPending(out, view)
	return nil
}

// loadDraft reads a flat JSON object keyed by form field name.
func loadDraft(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "read draft")
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, errs.Wrapf(err, "parse draft %s", path)
	}
	return fields, nil
}

func applyDraft(form *reservation.FormController, fields map[string]any) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if err := form.UpdateField(name, fields[name]); err != nil {
			return errs.Wrapf(err, "draft field %q", name)
		}
	}
	return nil
}

func printPaymentInstructions(out io.Writer, step *payment.Step) {
	d := step.Details()
	fmt.Fprintf(out, "\nReserva de %s para el %s (%d personas)\n", d.BookerName, d.VisitDate, d.TotalPeople)
	if len(d.SelectedAreasDetails) > 0 {
		names := make([]string, 0, len(d.SelectedAreasDetails))
		for _, a := range d.SelectedAreasDetails {
			names = append(names, a.Name)
		}
		fmt.Fprintf(out, "Áreas: %s\n", strings.Join(names, ", "))
	}
	fmt.Fprintf(out, "Tasa BCV: %s Bs/USD\n", pricing.FormatRate(d.BCVRate))
	fmt.Fprintf(out, "Monto a pagar: Bs. %s\n\n", pricing.FormatAmount(step.AmountDue()))
	fmt.Fprintln(out, "Datos para Pago Móvil:")
	fmt.Fprintf(out, "  Teléfono: %s\n", payment.PagoMovilPhone)
	fmt.Fprintf(out, "  Banco:    %s\n", payment.PagoMovilBank)
	fmt.Fprintf(out, "  RIF:      %s\n", payment.PagoMovilRIF)
	fmt.Fprintf(out, "  Titular:  %s\n\n", payment.PagoMovilHolder)
}

func printPending(out io.Writer, view *reservation.PendingView) {
	fmt.Fprintf(out, "[%s] Solicitud %s recibida\n", view.Banner, view.SolicitudID)
	for i, s := range view.NextSteps {
		fmt.Fprintf(out, "  %d. %s\n", i+1, s)
	}
	fmt.Fprintf(out, "Confirmación a: %s\n", view.CustomerEmail)
	fmt.Fprintf(out, "WhatsApp: %s\n", view.WhatsAppURL)
	if view.MailtoURL != "" {
		fmt.Fprintf(out, "Email: %s\n", view.MailtoURL)
	}
}
