// Package ledger ingests the interleaved transaction ledger file and produces
// the normalized, vendor-annotated dataset every other component consumes.
package ledger

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/finsum-dev/finsum/internal/merchant"
	"github.com/finsum-dev/finsum/internal/model"
)

// ErrNoTransactions is returned by Load when nothing survived parsing and
// filtering. Distinct from an unreadable source file.
var ErrNoTransactions = errors.New("no valid transactions parsed")

// Load reads the ledger at path, parses both layouts, filters, and assigns a
// canonical vendor to every surviving transaction. One warning is logged per
// discarded line. The returned slice is the caller's to keep; Load holds no
// state between calls.
func Load(path string, log zerolog.Logger) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}
	defer f.Close()

	txns, skipped, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing ledger %s: %w", path, err)
	}

	for _, s := range skipped {
		log.Warn().Int("line", s.Line).Str("content", s.Raw).Msg("could not parse line")
	}

	if len(txns) == 0 {
		return nil, ErrNoTransactions
	}

	for i := range txns {
		txns[i].Vendor = merchant.Classify(txns[i].Description)
	}

	log.Info().Int("transactions", len(txns)).Int("skipped", len(skipped)).Msg("ledger loaded")
	return txns, nil
}
