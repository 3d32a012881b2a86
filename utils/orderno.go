package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewOrderNumber builds a human-readable unique order number of the form
// ORD-<unix millis>-<9 uppercase chars>.
func NewOrderNumber() string {
	tail := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:9]
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), tail)
}
