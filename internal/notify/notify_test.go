package notify

import "testing"

func TestNopNotifier(t *testing.T) {
	id, err := nopNotifier{}.Notify(Notification{Summary: "x"})
	if err != nil || id != 0 {
		t.Errorf("Notify() = %d, %v, want 0, nil", id, err)
	}
}
