package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"concessionaria_xpto/internal/adapter/persistence/memory"
	mock_interfaces "concessionaria_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestFormatProposalNumber(t *testing.T) {
	at := time.Date(2022, time.July, 14, 10, 0, 0, 0, time.UTC)
	if got := FormatProposalNumber("B", at, 10305, "B"); got != "B2207-10305B" {
		t.Fatalf("expected B2207-10305B, got %s", got)
	}
	jan := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got := FormatProposalNumber("P", jan, 1, "A"); got != "P2501-1A" {
		t.Fatalf("expected P2501-1A, got %s", got)
	}
}

func TestProposalNumberGenerator_Next(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2022, time.July, 1, 0, 0, 0, 0, time.UTC)

	t.Run("formats with configured letters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		cfg := mock_interfaces.NewMockIConfigurationProvider(ctrl)

		cfg.EXPECT().GetValue(gomock.Any(), ConfigProposalNumberFixedLetter).Return("B", nil)
		cfg.EXPECT().GetValue(gomock.Any(), ConfigProposalInitialCodeLetter).Return(" B ", nil)
		seq.EXPECT().Next(gomock.Any(), ProposalSequenceName).Return(int64(10305), nil)

		n, err := NewProposalNumberGenerator(seq, cfg).Next(ctx, at)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.Num != 10305 || n.Cod != "B" || n.Formatted != "B2207-10305B" {
			t.Fatalf("unexpected number: %+v", n)
		}
	})

	t.Run("missing letters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		cfg := mock_interfaces.NewMockIConfigurationProvider(ctrl)

		cfg.EXPECT().GetValue(gomock.Any(), ConfigProposalNumberFixedLetter).Return("", nil)
		cfg.EXPECT().GetValue(gomock.Any(), ConfigProposalInitialCodeLetter).Return("B", nil)

		_, err := NewProposalNumberGenerator(seq, cfg).Next(ctx, at)
		if !errors.Is(err, ErrInvalidProposalNumber) {
			t.Fatalf("expected ErrInvalidProposalNumber, got %v", err)
		}
	})

	t.Run("sequence failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		cfg := mock_interfaces.NewMockIConfigurationProvider(ctrl)

		cfg.EXPECT().GetValue(gomock.Any(), gomock.Any()).Return("B", nil).Times(2)
		seq.EXPECT().Next(gomock.Any(), ProposalSequenceName).Return(int64(0), errors.New("throttled"))

		if _, err := NewProposalNumberGenerator(seq, cfg).Next(ctx, at); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("concurrent callers get distinct numbers", func(t *testing.T) {
		cfg := memory.NewConfiguration(map[string]string{
			ConfigProposalNumberFixedLetter: "B",
			ConfigProposalInitialCodeLetter: "B",
		})
		gen := NewProposalNumberGenerator(memory.NewSequence(), cfg)

		const n = 40
		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			seen = map[string]bool{}
		)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				num, err := gen.Next(ctx, at)
				if err != nil {
					t.Errorf("next: %v", err)
					return
				}
				mu.Lock()
				seen[num.Formatted] = true
				mu.Unlock()
			}()
		}
		wg.Wait()
		if len(seen) != n {
			t.Fatalf("expected %d distinct numbers, got %d", n, len(seen))
		}
	})
}
