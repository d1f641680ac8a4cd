// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MarkAnthonyM/BlockPlot/internal/logger"
	"github.com/MarkAnthonyM/BlockPlot/internal/utils"
	"github.com/MarkAnthonyM/BlockPlot/models"
)

// maxFormBytes bounds the new skillblock form body.
const maxFormBytes = 16 << 10

// skillblocks synchronizes every skillblock of the caller with the analytics
// source and returns the resulting series.
func (h *Handler) skillblocks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, ErrNoPrincipal)
		return
	}

	data, err := h.services.SyncService.SyncUser(r.Context(), principal.User)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Str("func", "*Handler.skillblocks").Int("status", status).Msg("error syncing skillblocks")
		return
	}

	if _, err = utils.WriteJSON(w, models.TimeWrapper{Data: data}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.skillblocks").Msg("error writing response")
	}
}

// newSkillblock creates a skillblock from a url-encoded or multipart form
// and sends the browser back to the dashboard.
func (h *Handler) newSkillblock(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, ErrNoPrincipal)
		return
	}

	form, err := parseSkillblockForm(w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.newSkillblock").Msg("error parsing form")
		writeError(w, err)
		return
	}

	block, err := h.services.SkillblockService.CreateSkillblock(r.Context(), principal.User, form)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Str("func", "*Handler.newSkillblock").Int("status", status).Msg("error creating skillblock")
		return
	}

	log.Info().Str("func", "*Handler.newSkillblock").Int64("block_id", block.BlockID).Msg("skillblock created")
	http.Redirect(w, r, h.auth.PostLoginURL, http.StatusSeeOther)
}

func parseSkillblockForm(w http.ResponseWriter, r *http.Request) (models.NewSkillblockForm, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseMultipartForm(maxFormBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return models.NewSkillblockForm{}, fmt.Errorf("%w: %w", ErrMalformedForm, err)
	}

	offline, err := parseCheckbox(r.FormValue("offline_category"))
	if err != nil {
		return models.NewSkillblockForm{}, fmt.Errorf("%w: offline_category: %w", ErrMalformedForm, err)
	}

	form := models.NewSkillblockForm{
		Category:        strings.TrimSpace(r.FormValue("category")),
		OfflineCategory: offline,
		SkillName:       strings.TrimSpace(r.FormValue("skill_name")),
		Description:     strings.TrimSpace(r.FormValue("description")),
	}
	if key := strings.TrimSpace(r.FormValue("api_key")); key != "" {
		form.APIKey = &key
	}

	return form, nil
}

// parseCheckbox accepts the values browsers and scripted clients send for a
// boolean field. Absent means false.
func parseCheckbox(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "":
		return false, nil
	case "on", "yes":
		return true, nil
	}
	return strconv.ParseBool(v)
}
