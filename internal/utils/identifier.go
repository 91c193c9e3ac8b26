package utils

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// DefaultStudentPrefix is used when no institution prefix is configured.
const DefaultStudentPrefix = "COLG"

// GenStudentID produces a human-memorable student identifier of the form
// {prefix}{2-digit-year}S{5-digit-random}, e.g. COLG24S12345.
//
// Uniqueness is not guaranteed here; it relies on the sparseness of the
// random space plus the unique constraint on students.student_id. A collision
// surfaces as an insertion failure and the caller regenerates.
func GenStudentID(prefix string) string {
	if prefix == "" {
		prefix = DefaultStudentPrefix
	}
	year := time.Now().UTC().Year() % 100
	return fmt.Sprintf("%s%02dS%d", prefix, year, 10000+rand.IntN(90000))
}

// GenGenericID produces an entity identifier of the form
// {prefix}-{millisecond-timestamp}-{4-digit-random}. Used for receipt (REC),
// admission (ADM), hostel-allocation (HST), exam (EXM) and gateway
// transaction (TXN) ids. Same collision policy as GenStudentID.
func GenGenericID(prefix string) string {
	ts := time.Now().UnixMilli()
	return fmt.Sprintf("%s-%d-%d", prefix, ts, 1000+rand.IntN(9000))
}
