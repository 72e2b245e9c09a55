// Package v1alpha1 exposes the character form over gRPC
package v1alpha1

import (
	"context"
	"log/slog"

	"github.com/coldtimes/MapFantasai/internal/clients/catalog"
	"github.com/coldtimes/MapFantasai/internal/engine/abilities"
	"github.com/coldtimes/MapFantasai/internal/entities/character"
	"github.com/coldtimes/MapFantasai/internal/errors"
	"github.com/coldtimes/MapFantasai/internal/orchestrators/draft"
	"github.com/coldtimes/MapFantasai/internal/pkg/taglist"
)

// Submitter finalizes drafts
type Submitter interface {
	Submit(ctx context.Context, d character.Draft) (*character.Finalized, error)
}

// OptionLister suggests values for identity fields
type OptionLister interface {
	ListOptions(ctx context.Context, field character.IdentityField) ([]catalog.Option, error)
}

// StatRoller rolls a full set of ability scores
type StatRoller interface {
	RollAll() ([]abilities.Roll, error)
}

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	Submitter Submitter
	Catalog   OptionLister
	Roller    StatRoller
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Submitter == nil {
		vb.RequiredField("Submitter")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	return vb.Build()
}

// Handler implements FormServiceServer
type Handler struct {
	submitter Submitter
	catalog   OptionLister
	roller    StatRoller
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		submitter: cfg.Submitter,
		catalog:   cfg.Catalog,
		roller:    cfg.Roller,
	}, nil
}

var _ FormServiceServer = (*Handler)(nil)

// incomingDraft checks a draft sent by a client. Tag lists must look like
// the tag editor produced them.
func incomingDraft(d *character.Draft) (character.Draft, error) {
	if d == nil {
		return character.Draft{}, errors.InvalidArgument("draft is required")
	}
	if err := d.Validate(); err != nil {
		return character.Draft{}, errors.Wrap(err, "draft is malformed")
	}
	return d.Clone(), nil
}

func draftResponse(d character.Draft) (*DraftResponse, error) {
	preview, err := draft.Preview(d)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to render preview"))
	}
	return &DraftResponse{Draft: d, Preview: preview}, nil
}

// NewDraft returns the default draft
func (h *Handler) NewDraft(_ context.Context, _ *NewDraftRequest) (*DraftResponse, error) {
	return draftResponse(character.NewDraft())
}

// SetField replaces one identity field
func (h *Handler) SetField(_ context.Context, req *SetFieldRequest) (*DraftResponse, error) {
	d, err := incomingDraft(req.Draft)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	field, err := character.ParseIdentityField(req.Field)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return draftResponse(draft.SetIdentity(d, field, req.Value))
}

// UpdateStat stores raw text as an ability score. Unparsable text becomes NaN.
func (h *Handler) UpdateStat(_ context.Context, req *UpdateStatRequest) (*DraftResponse, error) {
	d, err := incomingDraft(req.Draft)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	ability, err := character.ParseAbility(req.Ability)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return draftResponse(draft.UpdateStat(d, ability, req.Raw))
}

// AddTag appends a trimmed tag. Blank input leaves the list unchanged.
func (h *Handler) AddTag(_ context.Context, req *AddTagRequest) (*DraftResponse, error) {
	d, err := incomingDraft(req.Draft)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	list, err := character.ParseTagList(req.List)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return draftResponse(draft.UpdateTagList(d, list, draft.AddTag{Raw: req.Raw}))
}

// RemoveTag removes the tag at an index
func (h *Handler) RemoveTag(_ context.Context, req *RemoveTagRequest) (*DraftResponse, error) {
	d, err := incomingDraft(req.Draft)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	list, err := character.ParseTagList(req.List)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if tags := d.List(list); !taglist.InRange(tags, req.Index) {
		return nil, errors.ToGRPCError(
			errors.OutOfRangef("index %d is outside %s of length %d", req.Index, list, len(tags)).
				WithMeta("length", len(tags)),
		)
	}

	return draftResponse(draft.UpdateTagList(d, list, draft.RemoveTag{Index: req.Index}))
}

// Preview renders the JSON preview of a draft
func (h *Handler) Preview(_ context.Context, req *PreviewRequest) (*PreviewResponse, error) {
	d, err := incomingDraft(req.Draft)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	resp, err := draftResponse(d)
	if err != nil {
		return nil, err
	}
	return &PreviewResponse{Preview: resp.Preview}, nil
}

// RollStats rolls all six abilities and stores each total as if typed
func (h *Handler) RollStats(ctx context.Context, req *RollStatsRequest) (*RollStatsResponse, error) {
	d, err := incomingDraft(req.Draft)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	rolls, err := h.roller.RollAll()
	if err != nil {
		slog.ErrorContext(ctx, "failed to roll ability scores", "error", err)
		return nil, errors.ToGRPCError(err)
	}
	for _, intent := range draft.RollIntents(rolls) {
		d = draft.Apply(d, intent)
	}

	resp, err := draftResponse(d)
	if err != nil {
		return nil, err
	}

	rolled := make([]RolledStat, 0, len(rolls))
	for _, r := range rolls {
		rolled = append(rolled, RolledStat{
			Ability: r.Ability.String(),
			Dice:    r.Dice,
			Dropped: r.Dropped,
			Total:   r.Total,
		})
	}

	return &RollStatsResponse{Draft: resp.Draft, Preview: resp.Preview, Rolls: rolled}, nil
}

// Submit validates the draft and hands it off
func (h *Handler) Submit(ctx context.Context, req *SubmitRequest) (*SubmitResponse, error) {
	d, err := incomingDraft(req.Draft)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	finalized, err := h.submitter.Submit(ctx, d)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SubmitResponse{Character: finalized}, nil
}

// ListOptions suggests values for an identity field
func (h *Handler) ListOptions(ctx context.Context, req *ListOptionsRequest) (*ListOptionsResponse, error) {
	field, err := character.ParseIdentityField(req.Field)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	options, err := h.catalog.ListOptions(ctx, field)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListOptionsResponse{Options: options}, nil
}
