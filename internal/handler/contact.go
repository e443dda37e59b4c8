// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mileusna/useragent"

	"github.com/davirds/portfolio/internal/contact"
	"github.com/davirds/portfolio/internal/i18n"
	"github.com/davirds/portfolio/internal/middleware"
)

// maxFormBytes caps contact and preference form bodies.
const maxFormBytes = 64 << 10

// FieldView is one rendered input of the contact form.
type FieldView struct {
	Name        string
	Label       string
	Placeholder string
	Type        string
	Value       string
	Error       string
	Textarea    bool
	MaxLength   int
}

// ContactView is the template data of the contact form partial.
type ContactView struct {
	Status       contact.Status
	Message      string
	Fields       []FieldView
	Submitting   bool
	SendLabel    string
	SendingLabel string
}

// NewContactView builds the form view of a controller snapshot.
func NewContactView(s contact.State, t i18n.Localizer) ContactView {
	v := ContactView{
		Status:       s.Status,
		Message:      s.Message,
		Submitting:   s.Submitting(),
		SendLabel:    t.T("contact.form.send"),
		SendingLabel: t.T("contact.form.sending"),
	}
	for _, f := range contact.AllFields() {
		name := string(f)
		fv := FieldView{
			Name:        name,
			Label:       t.T("contact.form." + name),
			Placeholder: t.T("contact.form." + name + "Placeholder"),
			Type:        "text",
			Value:       s.Fields.Get(f),
			Error:       s.Errors.Get(f),
		}
		switch f {
		case contact.FieldEmail:
			fv.Type = "email"
		case contact.FieldWhatsApp:
			fv.Type = "tel"
			fv.MaxLength = contact.FormattedPhoneMaxLen
		case contact.FieldMessage:
			fv.Textarea = true
		}
		v.Fields = append(v.Fields, fv)
	}
	return v
}

// FieldResponse is the JSON reply to a field change.
type FieldResponse struct {
	Value string        `json:"value"`
	Error string        `json:"error"`
	State contact.State `json:"state"`
}

// SubmitResponse is the JSON reply to a submission.
type SubmitResponse struct {
	Success bool          `json:"success"`
	Error   string        `json:"error,omitempty"`
	State   contact.State `json:"state"`
}

// ContactHandler drives each visitor's contact form controller.
type ContactHandler struct {
	forms   *contact.Registry
	catalog *i18n.Catalog
	logger  *slog.Logger
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(forms *contact.Registry, catalog *i18n.Catalog, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		forms:   forms,
		catalog: catalog,
		logger:  logger,
	}
}

// controller returns the visitor's controller, or nil without a visitor id.
func (h *ContactHandler) controller(r *http.Request) *contact.Controller {
	id := middleware.GetVisitorID(r.Context())
	if id == "" {
		return nil
	}
	return h.forms.Get(id)
}

func (h *ContactHandler) translator(r *http.Request) i18n.Localizer {
	return h.catalog.Translator(middleware.GetPreferences(r.Context()).Language)
}

// Field handles POST /contact/field.
func (h *ContactHandler) Field(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	field, err := contact.ParseField(r.PostFormValue(FormFieldName))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctrl := h.controller(r)
	if ctrl == nil {
		writeJSONError(w, http.StatusInternalServerError, "No visitor session")
		return
	}

	state := ctrl.Change(field, r.PostFormValue(FormValueName))
	writeJSON(w, http.StatusOK, FieldResponse{
		Value: state.Fields.Get(field),
		Error: state.Errors.Get(field),
		State: state,
	})
}

// State handles GET /contact/state.
func (h *ContactHandler) State(w http.ResponseWriter, r *http.Request) {
	ctrl := h.controller(r)
	if ctrl == nil {
		writeJSONError(w, http.StatusInternalServerError, "No visitor session")
		return
	}
	writeJSON(w, http.StatusOK, ctrl.State())
}

// Submit handles POST /contact. Posted values that differ from the stored
// ones are applied before submitting, so the form also works without
// JavaScript. HTML clients are redirected back to the form; JSON clients get
// the state.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	ctrl := h.controller(r)
	if ctrl == nil {
		writeJSONError(w, http.StatusInternalServerError, "No visitor session")
		return
	}
	t := h.translator(r)
	logger := h.logger.With(clientAttrs(r)...)

	if r.PostFormValue(FormHoneypotName) != "" {
		logger.InfoContext(ctx, "contact honeypot filled, dropping submission")
		h.respond(w, r, http.StatusOK, SubmitResponse{
			Success: true,
			State:   contact.State{Status: contact.StatusSuccess, Message: t.T(contact.KeySubmitSuccess)},
		})
		return
	}

	posted := make(map[contact.Field]string, len(contact.AllFields()))
	for _, f := range contact.AllFields() {
		if values, ok := r.PostForm[string(f)]; ok && len(values) > 0 {
			posted[f] = values[0]
		}
	}

	state, err := ctrl.SubmitValues(ctx, t, posted)
	switch {
	case err == nil:
		logger.InfoContext(ctx, "contact form submitted")
		h.respond(w, r, http.StatusOK, SubmitResponse{Success: true, State: state})
	case errors.Is(err, contact.ErrSubmitInFlight):
		h.respond(w, r, http.StatusConflict, SubmitResponse{Error: err.Error(), State: state})
	case errors.Is(err, contact.ErrInvalid):
		h.respond(w, r, http.StatusUnprocessableEntity, SubmitResponse{Error: err.Error(), State: state})
	default:
		logger.WarnContext(ctx, "contact form submission failed", "error", err)
		h.respond(w, r, http.StatusBadGateway, SubmitResponse{Error: state.Message, State: state})
	}
}

// respond writes JSON for JSON clients and redirects everyone else to the form.
func (h *ContactHandler) respond(w http.ResponseWriter, r *http.Request, status int, resp SubmitResponse) {
	if wantsJSON(r) {
		writeJSON(w, status, resp)
		return
	}
	http.Redirect(w, r, ContactAnchor, http.StatusSeeOther)
}

// clientAttrs describes the submitting browser for logs.
func clientAttrs(r *http.Request) []any {
	ua := useragent.Parse(r.UserAgent())
	device := "desktop"
	switch {
	case ua.Bot:
		device = "bot"
	case ua.Tablet:
		device = "tablet"
	case ua.Mobile:
		device = "mobile"
	}
	return []any{
		slog.String("browser", ua.Name),
		slog.String("os", ua.OS),
		slog.String("device", device),
	}
}
