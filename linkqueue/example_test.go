package linkqueue_test

import (
	"fmt"

	"opendta/linkqueue"
)

func ExampleParseFlowModel() {
	m, err := linkqueue.ParseFlowModel("spatial_queue")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m)

	if _, err := linkqueue.ParseFlowModel("teleport"); err != nil {
		fmt.Println("unknown model rejected")
	}
	// Output:
	// spatial_queue
	// unknown model rejected
}
