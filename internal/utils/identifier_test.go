package utils_test

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/campuscore/college_erp_app/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestGenStudentID_Format(t *testing.T) {
	year := time.Now().UTC().Year() % 100
	re := regexp.MustCompile(fmt.Sprintf(`^COLG%02dS\d{5}$`, year))

	for i := 0; i < 100; i++ {
		id := utils.GenStudentID("")
		assert.Regexp(t, re, id)
	}
}

func TestGenStudentID_CustomPrefix(t *testing.T) {
	id := utils.GenStudentID("UNIV")
	assert.Regexp(t, `^UNIV\d{2}S\d{5}$`, id)
}

func TestGenGenericID_Format(t *testing.T) {
	re := regexp.MustCompile(`^REC-\d{13,}-\d{4}$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, re, utils.GenGenericID("REC"))
	}
}

func TestGenGenericID_PrefixVariants(t *testing.T) {
	for _, prefix := range []string{"ADM", "HST", "EXM", "TXN"} {
		id := utils.GenGenericID(prefix)
		assert.Regexp(t, `^`+prefix+`-\d+-\d{4}$`, id)
	}
}
