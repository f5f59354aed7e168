package hook

import (
	"errors"
	"testing"
)

func TestInvoke_NilCallbackIsNoop(t *testing.T) {
	t.Parallel()

	Invoke(nil, func(any, string) { t.Fatal("should not be called") }, "onSuccess")
}

func TestInvoke_ContainsPanicAndReports(t *testing.T) {
	t.Parallel()

	var recovered any
	var name string
	Invoke(func() { panic("hook broke") },
		func(r any, n string) { recovered = r; name = n }, "onError")

	if recovered != "hook broke" {
		t.Fatalf("expected panic forwarded, got %v", recovered)
	}
	if name != "onError" {
		t.Fatalf("expected hook name forwarded, got %q", name)
	}
}

func TestInvoke_HookErrorPanicIsDiscarded(t *testing.T) {
	t.Parallel()

	// must not panic out
	Invoke(func() { panic("first") }, func(any, string) { panic("second") }, "onSettled")
}

func TestInvoke_NilOnHookError(t *testing.T) {
	t.Parallel()

	Invoke(func() { panic("x") }, nil, "onRetry")
}

func TestMerge_CascadesDefaultFirst(t *testing.T) {
	t.Parallel()

	var order []string
	def := Set[int]{
		OnSuccess: []func(int, []any){func(int, []any) { order = append(order, "default") }},
	}
	call := Set[int]{
		OnSuccess: []func(int, []any){func(int, []any) { order = append(order, "call") }},
	}

	Merge(def, call).FireSuccess(1, nil)

	if len(order) != 2 || order[0] != "default" || order[1] != "call" {
		t.Fatalf("expected cascade default-first, got %v", order)
	}
}

func TestMerge_OnHookErrorIsReplaced(t *testing.T) {
	t.Parallel()

	defCalled, callCalled := false, false
	def := Set[int]{
		OnSuccess:   []func(int, []any){func(int, []any) { panic("x") }},
		OnHookError: func(any, string) { defCalled = true },
	}
	call := Set[int]{
		OnHookError: func(any, string) { callCalled = true },
	}

	Merge(def, call).FireSuccess(1, nil)

	if defCalled {
		t.Fatal("default OnHookError should be shadowed")
	}
	if !callCalled {
		t.Fatal("call-level OnHookError should receive the panic")
	}
}

func TestFireSuccess_Order(t *testing.T) {
	t.Parallel()

	var order []string
	s := Set[string]{
		OnSuccess: []func(string, []any){func(v string, _ []any) {
			order = append(order, "success:"+v)
		}},
		OnSettled: []func(string, error, []any){func(v string, err error, _ []any) {
			if err != nil {
				t.Errorf("unexpected error in settled: %v", err)
			}
			order = append(order, "settled:"+v)
		}},
	}

	s.FireSuccess("ok", nil)

	if len(order) != 2 || order[0] != "success:ok" || order[1] != "settled:ok" {
		t.Fatalf("expected onSuccess then onSettled, got %v", order)
	}
}

func TestFireError_PassesZeroValueToSettled(t *testing.T) {
	t.Parallel()

	expected := errors.New("boom")
	var order []string
	s := Set[int]{
		OnError: []func(error, []any){func(err error, _ []any) {
			if err != expected {
				t.Errorf("unexpected error: %v", err)
			}
			order = append(order, "error")
		}},
		OnSettled: []func(int, error, []any){func(v int, err error, _ []any) {
			if v != 0 || err != expected {
				t.Errorf("unexpected settled args: %v %v", v, err)
			}
			order = append(order, "settled")
		}},
	}

	s.FireError(expected, nil)

	if len(order) != 2 || order[0] != "error" || order[1] != "settled" {
		t.Fatalf("expected onError then onSettled, got %v", order)
	}
}

func TestFireRetry_PassesAttempt(t *testing.T) {
	t.Parallel()

	var attempts []int
	s := Set[int]{
		OnRetry: []func(error, int, []any){func(_ error, attempt int, _ []any) {
			attempts = append(attempts, attempt)
		}},
	}

	s.FireRetry(errors.New("x"), 1, nil)
	s.FireRetry(errors.New("x"), 2, nil)

	if len(attempts) != 2 || attempts[0] != 1 || attempts[1] != 2 {
		t.Fatalf("expected attempts [1 2], got %v", attempts)
	}
}
