package credential

// Package credential hosts the stable, minimal vocabulary shared with the
// indexing pipeline for generated attestation data. Keep these types free of
// behavior and versioned independently from any internal registry models.

// ContractVersion identifies the contract schema version for compatibility checks.
// Bump on breaking changes to the shapes below; consumers can pin or roll forward.
const ContractVersion = "v0.1.0"

// Type identifies the kind of credential being generated.
type Type string

const (
	TypeStatusCredential      Type = "StatusCredential"
	TypeTrustCredential       Type = "TrustCredential"
	TypeAuditReportApprove    Type = "AuditReportApproveCredential"
	TypeAuditReportDisapprove Type = "AuditReportDisapproveCredential"
	TypeEndorsementCredential Type = "EndorsementCredential"
	TypeDisputeCredential     Type = "DisputeCredential"
)

// SchemaID identifies the registered data shape a credential conforms to.
// The indexer transports schema ids as u32, so the width is fixed here.
type SchemaID uint32

// EndorsementType is the polarity code carried by an endorsement credential.
type EndorsementType int8

const (
	EndorsementNeutral  EndorsementType = 0
	EndorsementPositive EndorsementType = 1
	EndorsementNegative EndorsementType = -1
)

// StatusReason names the justification attached to a status credential.
type StatusReason string

const (
	ReasonUnreliable StatusReason = "Unreliable"
	ReasonScam       StatusReason = "Scam"
	ReasonIncomplete StatusReason = "Incomplete"
)

// StatusReasonDescriptor carries the human-readable form of a status reason.
// Every descriptor's Type must have a registered wire code; the reverse does
// not hold (a code may ship before its display copy does).
type StatusReasonDescriptor struct {
	Type  StatusReason `json:"type"`
	Value string       `json:"value"`
	Lang  string       `json:"lang"`
}
