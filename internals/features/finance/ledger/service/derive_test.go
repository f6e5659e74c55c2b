// file: internals/features/finance/ledger/service/derive_test.go
package service_test

import (
	"testing"

	"sekolahku_backend/internals/features/finance/ledger/model"
	"sekolahku_backend/internals/features/finance/ledger/service"
)

func TestStatusFromTotals(t *testing.T) {
	cases := []struct {
		name  string
		total int64
		paid  int64
		want  model.DueStatus
	}{
		{"belum bayar", 5000, 0, model.DueStatusUnpaid},
		{"sebagian", 5000, 2000, model.DueStatusPartial},
		{"lunas pas", 5000, 5000, model.DueStatusPaid},
		{"overpayment tetap paid", 5000, 6000, model.DueStatusPaid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := service.StatusFromTotals(tc.total, tc.paid); got != tc.want {
				t.Fatalf("StatusFromTotals(%d, %d) = %s, want %s", tc.total, tc.paid, got, tc.want)
			}
		})
	}
}

func TestPaidTotalIgnoresVoided(t *testing.T) {
	payments := []model.Payment{
		{PaymentAmountIDR: 2000},
		{PaymentAmountIDR: 3000, PaymentVoided: true},
		{PaymentAmountIDR: 1000},
	}
	if got := service.PaidTotal(payments); got != 3000 {
		t.Fatalf("PaidTotal = %d, want 3000", got)
	}

	d := &model.DueItem{DueItemTotalAmountIDR: 5000}
	if got := service.Balance(d, payments); got != 2000 {
		t.Fatalf("Balance = %d, want 2000", got)
	}
	if got := service.StatusOf(d, payments); got != model.DueStatusPartial {
		t.Fatalf("StatusOf = %s, want partial", got)
	}
}
