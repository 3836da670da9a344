package repository

import (
	"errors"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// createdAtLayout pads the fraction to a fixed width so UTC timestamp strings
// compare lexicographically in DynamoDB range/filter expressions
// (RFC3339Nano trims trailing zeros and breaks that ordering).
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

func itoa(n int) string { return strconv.Itoa(n) }

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}
