// Package records provides the runner that lists discovered timekeep
// records.
package records

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"tableflip.dev/timekeep/pkg/printers"
	"tableflip.dev/timekeep/pkg/vault"
)

// Records lists the timekeep records discovered in the vault.
type Records struct {
	Vault  string
	Query  string
	ShowID bool
	JSON   bool
}

// Do scans the vault and prints the discovered records.
func (n *Records) Do(ctx context.Context) error {
	all, err := vault.Scan(ctx, n.Vault)
	if err != nil {
		return err
	}
	all = vault.FilterRecords(all, n.Query)

	if n.JSON {
		return n.printJSON(all)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.TitleWithCount("Timekeep records", len(all))
	pp.Records(all...)
	return nil
}

type recordDTO struct {
	ID         string `json:"id"`
	SourcePath string `json:"sourcePath"`
	Ordinal    int    `json:"ordinal"`
	Leaves     int    `json:"leaves"`
}

func (n *Records) printJSON(all []vault.Record) error {
	out := make([]recordDTO, 0, len(all))
	for _, r := range all {
		out = append(out, recordDTO{
			ID:         r.ID,
			SourcePath: r.SourcePath,
			Ordinal:    r.Ordinal,
			Leaves:     r.Leaves(),
		})
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
