// Package main provides a CLI tool that prints the credential constant
// tables and checks them for internal consistency. Pipeline operators use
// it to diff the generated-attestation contract against the indexer's
// schema registry before a mock data run.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"mockattest/contracts/credential"
	"mockattest/internal/credential/registry"
	"mockattest/internal/platform/logger"
)

type schemaEntry struct {
	CredentialType credential.Type     `json:"credential_type"`
	SchemaID       credential.SchemaID `json:"schema_id"`
}

type reasonEntry struct {
	Reason credential.StatusReason `json:"reason"`
	Code   byte                    `json:"code"`
}

type dumpOutput struct {
	ContractVersion   string                              `json:"contract_version"`
	SchemaIDs         []schemaEntry                       `json:"schema_ids"`
	EndorsementTypes  []credential.EndorsementType        `json:"endorsement_types"`
	AuditReportTypes  []credential.Type                   `json:"audit_report_types"`
	ReasonCodes       []reasonEntry                       `json:"reason_codes"`
	ReasonDescriptors []credential.StatusReasonDescriptor `json:"reason_descriptors"`
	UndescribedCodes  []credential.StatusReason           `json:"undescribed_codes,omitempty"`
}

// credentialTypes drives the dump order; keep it stable so output diffs
// cleanly across runs.
var credentialTypes = []credential.Type{
	credential.TypeStatusCredential,
	credential.TypeTrustCredential,
	credential.TypeAuditReportApprove,
	credential.TypeAuditReportDisapprove,
	credential.TypeEndorsementCredential,
	credential.TypeDisputeCredential,
}

var statusReasons = []credential.StatusReason{
	credential.ReasonUnreliable,
	credential.ReasonScam,
	credential.ReasonIncomplete,
}

func main() {
	asJSON := flag.Bool("json", false, "Output as JSON")
	flag.Parse()

	log := logger.New()
	reg := registry.New(registry.WithLogger(log))

	if err := reg.Validate(); err != nil {
		log.Error("constant tables are inconsistent", "error", err)
		os.Exit(1)
	}
	for _, reason := range reg.UndescribedReasons() {
		log.Warn("status reason has a wire code but no descriptor", "reason", string(reason))
	}

	out := dumpOutput{ContractVersion: credential.ContractVersion}
	for _, t := range credentialTypes {
		id, err := reg.SchemaID(t)
		if err != nil {
			log.Error("schema id lookup failed", "credential_type", string(t), "error", err)
			os.Exit(1)
		}
		out.SchemaIDs = append(out.SchemaIDs, schemaEntry{CredentialType: t, SchemaID: id})
	}
	out.EndorsementTypes = reg.EndorsementTypes()
	out.AuditReportTypes = reg.AuditReportTypes()
	for _, reason := range statusReasons {
		code, err := reg.StatusReasonCode(reason)
		if err != nil {
			log.Error("reason code lookup failed", "reason", string(reason), "error", err)
			os.Exit(1)
		}
		out.ReasonCodes = append(out.ReasonCodes, reasonEntry{Reason: reason, Code: code})
	}
	out.ReasonDescriptors = reg.StatusReasonDescriptors()
	out.UndescribedCodes = reg.UndescribedReasons()

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			log.Error("encoding dump failed", "error", err)
			os.Exit(1)
		}
		return
	}

	printText(out)
}

func printText(out dumpOutput) {
	fmt.Printf("contract version: %s\n\n", out.ContractVersion)
	fmt.Println("schema ids:")
	for _, e := range out.SchemaIDs {
		fmt.Printf("  %-32s %d\n", e.CredentialType, e.SchemaID)
	}
	fmt.Println("\nendorsement types:")
	for _, t := range out.EndorsementTypes {
		fmt.Printf("  %d\n", t)
	}
	fmt.Println("\naudit report types:")
	for _, t := range out.AuditReportTypes {
		fmt.Printf("  %s\n", t)
	}
	fmt.Println("\nstatus reason codes:")
	for _, e := range out.ReasonCodes {
		fmt.Printf("  %-12s 0x%02x\n", e.Reason, e.Code)
	}
	fmt.Println("\nstatus reason descriptors:")
	for _, d := range out.ReasonDescriptors {
		fmt.Printf("  %-12s %q (%s)\n", d.Type, d.Value, d.Lang)
	}
	if len(out.UndescribedCodes) > 0 {
		fmt.Println("\ncodes without descriptors:")
		for _, r := range out.UndescribedCodes {
			fmt.Printf("  %s\n", r)
		}
	}
}
