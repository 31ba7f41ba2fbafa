package booking

import "testing"

func TestIsValidStatus(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		if !IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) = false, want true", s)
		}
	}

	for _, s := range []Status{"", "done", "CONFIRMED", "scheduled"} {
		if IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) = true, want false", s)
		}
	}
}

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusPending {
		t.Fatalf("InitialStatus() = %q, want pending", InitialStatus())
	}
}

func TestIsValidPaymentMethod(t *testing.T) {
	for _, m := range []PaymentMethod{MethodBankTransfer, MethodEFT, MethodPayTR} {
		if !IsValidPaymentMethod(m) {
			t.Errorf("IsValidPaymentMethod(%q) = false, want true", m)
		}
	}
	if IsValidPaymentMethod("credit_card") {
		t.Error("IsValidPaymentMethod(credit_card) = true, want false")
	}
}

func TestIsValidPaymentStatus(t *testing.T) {
	for _, s := range []PaymentStatus{PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded} {
		if !IsValidPaymentStatus(s) {
			t.Errorf("IsValidPaymentStatus(%q) = false, want true", s)
		}
	}
	if IsValidPaymentStatus("cancelled") {
		t.Error("IsValidPaymentStatus(cancelled) = true, want false")
	}
}
