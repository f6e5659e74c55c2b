// file: internals/features/finance/ledger/service/aggregate.go
package service

import (
	"context"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/finance/ledger/model"
)

/* ===================== Agregasi (dashboard) ===================== */

type AggregateResult struct {
	TotalExpectedIDR  int64                     `json:"total_expected_idr"`
	TotalCollectedIDR int64                     `json:"total_collected_idr"`
	TotalPendingIDR   int64                     `json:"total_pending_idr"`
	CountByStatus     map[model.DueStatus]int64 `json:"count_by_status"`
}

// Aggregate menjumlahkan total/paid/balance untuk satu scope filter.
// Balance negatif (overpayment) tetap ada di level item untuk audit, tapi
// di-clamp ke 0 KHUSUS untuk agregat pending — tidak pernah melaporkan
// tunggakan negatif.
func (s *Service) Aggregate(ctx context.Context, schoolID uuid.UUID, f Filter) (*AggregateResult, error) {
	items, err := s.store.ListDueItems(ctx, schoolID, f)
	if err != nil {
		return nil, err
	}
	res := &AggregateResult{
		CountByStatus: map[model.DueStatus]int64{
			model.DueStatusUnpaid:  0,
			model.DueStatusPartial: 0,
			model.DueStatusPaid:    0,
		},
	}
	for i := range items {
		it := &items[i]
		res.TotalExpectedIDR += it.DueItemTotalAmountIDR
		res.TotalCollectedIDR += it.PaidTotalIDR
		if pending := it.DueItemTotalAmountIDR - it.PaidTotalIDR; pending > 0 {
			res.TotalPendingIDR += pending
		}
		res.CountByStatus[StatusFromTotals(it.DueItemTotalAmountIDR, it.PaidTotalIDR)]++
	}
	return res, nil
}
