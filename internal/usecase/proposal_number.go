package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"concessionaria_xpto/internal/usecase/interfaces"
)

// ProposalSequenceName is the counter shared by every generated proposal number.
const ProposalSequenceName = "proposal_number"

// ProposalNumber is a freshly allocated proposal identifier.
type ProposalNumber struct {
	Num       int64
	Cod       string
	Formatted string
}

// ProposalNumberGenerator allocates human-readable proposal numbers in the
// form <fixed letter><YYMM>-<sequence><code letter>, e.g. B2207-10305B.
//
// The sequence is global and never resets. Atomicity comes from the
// ISequenceRepository implementation.
type ProposalNumberGenerator struct {
	seq    interfaces.ISequenceRepository
	config interfaces.IConfigurationProvider
}

func NewProposalNumberGenerator(seq interfaces.ISequenceRepository, config interfaces.IConfigurationProvider) *ProposalNumberGenerator {
	return &ProposalNumberGenerator{seq: seq, config: config}
}

func (g *ProposalNumberGenerator) Next(ctx context.Context, now time.Time) (ProposalNumber, error) {
	fixed, err := g.config.GetValue(ctx, ConfigProposalNumberFixedLetter)
	if err != nil {
		return ProposalNumber{}, err
	}
	code, err := g.config.GetValue(ctx, ConfigProposalInitialCodeLetter)
	if err != nil {
		return ProposalNumber{}, err
	}
	fixed, code = strings.TrimSpace(fixed), strings.TrimSpace(code)
	if fixed == "" || code == "" {
		return ProposalNumber{}, ErrInvalidProposalNumber
	}

	num, err := g.seq.Next(ctx, ProposalSequenceName)
	if err != nil {
		return ProposalNumber{}, fmt.Errorf("next proposal sequence: %w", err)
	}
	return ProposalNumber{
		Num:       num,
		Cod:       code,
		Formatted: FormatProposalNumber(fixed, now, num, code),
	}, nil
}

func FormatProposalNumber(fixed string, at time.Time, num int64, code string) string {
	return fmt.Sprintf("%s%s-%d%s", fixed, at.Format("0601"), num, code)
}
