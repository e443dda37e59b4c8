// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the home page.
	RouteRoot = "/"
	// RouteHealth is the health check.
	RouteHealth = "/health"
	// RouteHealthLive is the liveness probe.
	RouteHealthLive = "/health/live"

	// RouteContact receives form submissions.
	RouteContact = "/contact"
	// RouteContactField receives single field changes.
	RouteContactField = "/contact/field"
	// RouteContactState returns the visitor's form snapshot.
	RouteContactState = "/contact/state"

	// RoutePrefsTheme toggles the color theme.
	RoutePrefsTheme = "/prefs/theme"
	// RoutePrefsLanguage sets the site language.
	RoutePrefsLanguage = "/prefs/language"

	// RoutePsi is the psychologist landing page.
	RoutePsi = "/psi"
	// RoutePsiAd is the sponsored post preview.
	RoutePsiAd = "/psi/ad"
	// RoutePsiAdImage is the square image ad preview.
	RoutePsiAdImage = "/psi/ad-image"
	// RoutePsiAdImageWide is the 16:9 image ad preview.
	RoutePsiAdImageWide = "/psi/ad-image-16x9"
	// RoutePsiAdImagePNG is the square creative.
	RoutePsiAdImagePNG = "/psi/ad-image.png"
	// RoutePsiAdImageWidePNG is the 16:9 creative.
	RoutePsiAdImageWidePNG = "/psi/ad-image-16x9.png"
)

// Form input names.
const (
	FormFieldName  = "field"
	FormValueName  = "value"
	FormReturnName = "return"
	FormLangName   = "lang"
	// FormHoneypotName is hidden from people; bots tend to fill it.
	FormHoneypotName = "_website"
)

// ContactAnchor is where form posts return to on the home page.
const ContactAnchor = "/#contact"
