package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/dfs"
)

// ExampleExplore walks a small cyclic state machine.
func ExampleExplore() {
	next := map[string][]string{
		"idle":    {"running"},
		"running": {"paused", "done"},
		"paused":  {"running"},
	}
	res, err := dfs.Explore([]string{"idle"}, func(s string) []string { return next[s] })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [idle running paused done]
}
