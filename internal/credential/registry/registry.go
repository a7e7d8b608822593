// Package registry exposes the constant tables used to shape generated
// attestation data: schema ids per credential type, endorsement polarity
// values, audit report subtypes, and status reason descriptors with their
// single-byte wire codes.
//
// All tables are populated at init and never written afterwards, so a
// Registry may be shared across goroutines without synchronization.
// Lookups on unknown keys fail fast with a coded error rather than
// returning a zero value; a silently wrong schema id or reason code would
// corrupt downstream attestation data.
package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"mockattest/contracts/credential"
	registrymetrics "mockattest/internal/credential/registry/metrics"
	dErrors "mockattest/pkg/domain-errors"
)

// schemaIDs maps credential type names to their registered schema ids.
// EndorsementCredential and DisputeCredential both map to 4 on purpose:
// the indexer stores them under one shared schema.
var schemaIDs = map[credential.Type]credential.SchemaID{
	credential.TypeStatusCredential:      1,
	credential.TypeTrustCredential:       2,
	credential.TypeAuditReportApprove:    2,
	credential.TypeAuditReportDisapprove: 3,
	credential.TypeEndorsementCredential: 4,
	credential.TypeDisputeCredential:     4,
}

// endorsementTypes is ordered; some generators index into it positionally.
var endorsementTypes = []credential.EndorsementType{
	credential.EndorsementNeutral,
	credential.EndorsementPositive,
	credential.EndorsementNegative,
}

var auditReportTypes = []credential.Type{
	credential.TypeAuditReportApprove,
	credential.TypeAuditReportDisapprove,
}

var statusReasonDescriptors = []credential.StatusReasonDescriptor{
	{Type: credential.ReasonScam, Value: "Scam", Lang: "en-US"},
}

// statusReasonCodes is the wire encoding for status reasons. The byte
// values are matched on by external indexing infrastructure and must
// never be renumbered.
var statusReasonCodes = map[credential.StatusReason]byte{
	credential.ReasonUnreliable: 0x0,
	credential.ReasonScam:       0x1,
	credential.ReasonIncomplete: 0x2,
}

// Registry serves read-only lookups against the constant tables.
type Registry struct {
	logger  *slog.Logger
	metrics *registrymetrics.Metrics
}

// Option configures a Registry.
type Option func(r *Registry)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

func WithMetrics(m *registrymetrics.Metrics) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}

// New builds a Registry. Logger and metrics are optional; lookups stay
// silent unless they are supplied.
func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SchemaID returns the registered schema id for a credential type.
// Fails with CodeUnknownCredentialType when the type is not registered.
func (r *Registry) SchemaID(t credential.Type) (credential.SchemaID, error) {
	id, ok := schemaIDs[t]
	if r.metrics != nil {
		r.metrics.RecordSchemaLookup(ok)
	}
	if !ok {
		if r.logger != nil {
			r.logger.Debug("schema id lookup miss", "credential_type", string(t))
		}
		return 0, dErrors.New(dErrors.CodeUnknownCredentialType,
			fmt.Sprintf("no schema id registered for credential type %q", t))
	}
	return id, nil
}

// EndorsementTypes returns the allowed endorsement polarity values in
// their registered order. The returned slice is a copy; callers may
// mutate it freely.
func (r *Registry) EndorsementTypes() []credential.EndorsementType {
	out := make([]credential.EndorsementType, len(endorsementTypes))
	copy(out, endorsementTypes)
	return out
}

// AuditReportTypes returns the two audit report credential subtypes in
// their registered order. The returned slice is a copy.
func (r *Registry) AuditReportTypes() []credential.Type {
	out := make([]credential.Type, len(auditReportTypes))
	copy(out, auditReportTypes)
	return out
}

// StatusReasonDescriptors returns the human-readable status reason
// descriptors. The returned slice is a copy.
func (r *Registry) StatusReasonDescriptors() []credential.StatusReasonDescriptor {
	out := make([]credential.StatusReasonDescriptor, len(statusReasonDescriptors))
	copy(out, statusReasonDescriptors)
	return out
}

// StatusReasonCode returns the single-byte wire code for a status reason.
// Fails with CodeUnknownReasonName when the reason is not registered.
func (r *Registry) StatusReasonCode(reason credential.StatusReason) (byte, error) {
	code, ok := statusReasonCodes[reason]
	if r.metrics != nil {
		r.metrics.RecordReasonLookup(ok)
	}
	if !ok {
		if r.logger != nil {
			r.logger.Debug("reason code lookup miss", "reason", string(reason))
		}
		return 0, dErrors.New(dErrors.CodeUnknownReasonName,
			fmt.Sprintf("no wire code registered for status reason %q", reason))
	}
	return code, nil
}

// Validate checks the descriptor tables against the code table. Every
// descriptor must have a registered wire code; a descriptor without one
// would emit credentials the indexer cannot encode. Fails with
// CodeInvariantViolation on the first gap.
func (r *Registry) Validate() error {
	for _, d := range statusReasonDescriptors {
		if _, ok := statusReasonCodes[d.Type]; !ok {
			return dErrors.New(dErrors.CodeInvariantViolation,
				fmt.Sprintf("status reason descriptor %q has no wire code", d.Type))
		}
	}
	return nil
}

// UndescribedReasons returns the reasons that have a wire code but no
// human-readable descriptor, in ascending code order. This is legal
// (codes may ship before display copy) but worth surfacing.
func (r *Registry) UndescribedReasons() []credential.StatusReason {
	described := make(map[credential.StatusReason]struct{}, len(statusReasonDescriptors))
	for _, d := range statusReasonDescriptors {
		described[d.Type] = struct{}{}
	}
	var out []credential.StatusReason
	for reason := range statusReasonCodes {
		if _, ok := described[reason]; !ok {
			out = append(out, reason)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return statusReasonCodes[out[i]] < statusReasonCodes[out[j]]
	})
	return out
}
