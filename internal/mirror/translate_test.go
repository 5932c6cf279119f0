package mirror

import (
	"testing"

	"github.com/stretchr/testify/require"

	"smartlandlord/internal/domain"
)

func TestPaymentStatusRoundTrip(t *testing.T) {
	for _, s := range []domain.PaymentStatus{domain.PaymentPaid, domain.PaymentPending, domain.PaymentOverdue} {
		display, err := DisplayPaymentStatus(s)
		require.NoError(t, err)

		back, err := ParsePaymentStatus(display)
		require.NoError(t, err)
		require.Equal(t, s, back)
	}
}

func TestDisplayStrings(t *testing.T) {
	got, err := DisplayPaymentStatus(domain.PaymentPaid)
	require.NoError(t, err)
	require.Equal(t, "已繳", got)

	got, err = DisplayTicketStatus(domain.TicketInProgress)
	require.NoError(t, err)
	require.Equal(t, "維修中", got)

	got, err = DisplayFilterStatus(domain.FilterDueSoon)
	require.NoError(t, err)
	require.Equal(t, "即將到期", got)

	got, err = DisplayExpenseCategory(domain.ExpenseWater)
	require.NoError(t, err)
	require.Equal(t, "自來水費", got)
}

func TestUnknownValuesRejectedAtBoundary(t *testing.T) {
	_, err := DisplayPaymentStatus("Unknown")
	require.Error(t, err)

	_, err = ParsePaymentStatus("乱码")
	require.Error(t, err)

	_, err = ParseTicketPriority("")
	require.Error(t, err)
}

func TestAllEnumRoundTrips(t *testing.T) {
	for internal := range ticketCategoryDisplay {
		display, err := DisplayTicketCategory(internal)
		require.NoError(t, err)
		back, err := ParseTicketCategory(display)
		require.NoError(t, err)
		require.Equal(t, internal, back)
	}
	for internal := range expenseCategoryDisplay {
		display, err := DisplayExpenseCategory(internal)
		require.NoError(t, err)
		back, err := ParseExpenseCategory(display)
		require.NoError(t, err)
		require.Equal(t, internal, back)
	}
}

func TestPaymentPayload_TranslatesEnums(t *testing.T) {
	p := domain.PaymentRecord{
		ID: "p-1", TenantID: "t-1", TenantName: "王小明",
		Amount: 15000, DueDate: "2024-01-05",
		Status: domain.PaymentPending, Type: domain.PaymentRent,
	}

	payload, err := PaymentPayload(p)
	require.NoError(t, err)
	require.Equal(t, "待繳", payload["status"])
	require.Equal(t, "租金", payload["type"])
	require.Equal(t, 15000, payload["amount"])
}

func TestPaymentPayload_RejectsCorruptEnum(t *testing.T) {
	p := domain.PaymentRecord{ID: "p-1", Status: "Bogus", Type: domain.PaymentRent}
	_, err := PaymentPayload(p)
	require.Error(t, err)
}
