package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/monman-id/monman/internal/model"
)

func TestRenderBudgetCard(t *testing.T) {
	last := model.Money(20000000)
	c := &model.BudgetCategory{
		Name:            "Belanja Harian",
		Allocated:       50000000,
		Period:          model.PeriodMonthly,
		LastPeriodSpent: &last,
		Transactions: []model.Transaction{
			{Item: "Indomie Goreng", Quantity: "× 5", Amount: 1500000, Store: "Indomaret", Date: time.Date(2025, 11, 25, 0, 0, 0, 0, time.UTC)},
			{Item: "Bensin", Amount: 5000000, Date: time.Date(2025, 11, 23, 0, 0, 0, 0, time.UTC)},
		},
		CommonPurchases: []model.CommonPurchase{
			{Item: "Beras", Quantity: "5 kg", EstimatedAmount: 6500000},
		},
	}

	card := renderBudgetCard(c)

	assert.Contains(t, card, "Belanja Harian")
	assert.Contains(t, card, "bulan ini")
	assert.Contains(t, card, "13% terpakai") // 65.000 of 500.000
	assert.Contains(t, card, "Rp 65.000")
	assert.Contains(t, card, "Rp 500.000")
	assert.Contains(t, card, "Beras")
	assert.Contains(t, card, "Indomie Goreng (× 5)")
	assert.Contains(t, card, "Last period:")
	assert.Contains(t, card, "25/11/2025")
}

func TestRenderBudgetCardWithoutComparison(t *testing.T) {
	c := &model.BudgetCategory{
		Name:      "Transportasi",
		Allocated: 30000000,
		Period:    model.PeriodWeekly,
	}

	card := renderBudgetCard(c)
	assert.Contains(t, card, "minggu ini")
	assert.False(t, strings.Contains(card, "Last period:"))
	assert.Contains(t, card, "0% terpakai")
}
