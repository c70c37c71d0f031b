// Package id generates snowflake surrogate keys. The default node works
// for tests and single-instance runs; call Init with a distinct node ID
// when running more than one instance.
package id

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

var node = mustNode(0)

func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return fmt.Errorf("creating snowflake node: %w", err)
	}
	node = n
	return nil
}

func New() int64 {
	return node.Generate().Int64()
}

func mustNode(nodeID int64) *snowflake.Node {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		panic(err)
	}
	return n
}
