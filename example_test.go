package svcfault_test

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"syscall"
	"time"

	svcfault "github.com/blackwell-systems/svc-fault"
)

func ExampleClassify() {
	faults := []error{
		context.DeadlineExceeded,
		syscall.ECONNREFUSED,
		errors.New("unexpected state"),
	}
	for _, err := range faults {
		f := svcfault.Classify(err)
		fmt.Println(f.Kind.Code(), f.Kind)
	}
	// Output:
	// ERR002 timeout
	// ERR001 network
	// ERR004 internal
}

func ExampleFailure_Response() {
	status, body := svcfault.InvalidInput().Response()
	fmt.Println(status, body.ErrorCode, body.ErrorMessage)
	// Output:
	// 400 ERR005 Invalid input provided
}

func ExampleWrite() {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/orders", nil)

	svcfault.Write(w, r, context.DeadlineExceeded)

	fmt.Println(w.Code)
	fmt.Print(w.Body.String())
	// Output:
	// 504
	// {"errorCode":"ERR002","errorMessage":"Request timed out"}
}

func ExampleOffload() {
	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()

	_, err := svcfault.Offload(ctx, func() (string, error) {
		time.Sleep(time.Second) // slow dependent call
		return "done", nil
	})
	fmt.Println(svcfault.Is(err, svcfault.KindTimeout))
	// Output:
	// true
}
