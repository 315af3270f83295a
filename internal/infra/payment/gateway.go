package payment

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PeymanKh/CRFMS/internal/pkg/clock"
	"github.com/PeymanKh/CRFMS/internal/pkg/errs"
	"github.com/PeymanKh/CRFMS/internal/usecase/commands"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	ReasonInvalidNumber  = "invalid card number"
	ReasonInvalidCVV     = "invalid cvv"
	ReasonInvalidExpiry  = "invalid expiry date"
	ReasonCardExpired    = "card expired"
	ReasonMissingHolder  = "missing card holder"
	ReasonNegativeAmount = "amount cannot be negative"
)

var (
	cvvPattern    = regexp.MustCompile(`^\d{3,4}$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/(\d{2})$`)
)

// SimulatedGateway approves any well-formed, unexpired card. Nothing leaves the process.
type SimulatedGateway struct {
	clock   clock.Clock
	limiter *rate.Limiter
	logger  *slog.Logger
}

var _ commands.PaymentGateway = (*SimulatedGateway)(nil)

// NewSimulatedGateway throttles charges through limiter; a nil limiter never waits.
func NewSimulatedGateway(clk clock.Clock, limiter *rate.Limiter, logger *slog.Logger) *SimulatedGateway {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &SimulatedGateway{clock: clk, limiter: limiter, logger: logger}
}

func (g *SimulatedGateway) Charge(ctx context.Context, req commands.ChargeRequest) (*commands.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "charge aborted")
	}
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, errs.Wrap(err, "charge throttled")
	}

	now := g.clock.Now()
	if reason := g.check(req, now); reason != "" {
		g.logger.InfoContext(ctx, "card declined",
			"invoice_id", req.InvoiceID.String(),
			"card", Mask(req.Card.Number),
			"reason", reason,
		)
		return &commands.Receipt{Approved: false, Reason: reason, ProcessedAt: now}, nil
	}

	ref := "PAY-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
	g.logger.InfoContext(ctx, "card charged",
		"invoice_id", req.InvoiceID.String(),
		"card", Mask(req.Card.Number),
		"amount", req.Amount.String(),
		"reference", ref,
	)
	return &commands.Receipt{Approved: true, Reference: ref, ProcessedAt: now}, nil
}

// check returns the decline reason, or "" when the charge can go through.
func (g *SimulatedGateway) check(req commands.ChargeRequest, now time.Time) string {
	switch {
	case req.Amount.IsNegative():
		return ReasonNegativeAmount
	case strings.TrimSpace(req.Card.Holder) == "":
		return ReasonMissingHolder
	case !ValidNumber(req.Card.Number):
		return ReasonInvalidNumber
	case !cvvPattern.MatchString(req.Card.CVV):
		return ReasonInvalidCVV
	}

	expires, err := ParseExpiry(req.Card.Expiry)
	if err != nil {
		return ReasonInvalidExpiry
	}
	if !now.Before(expires) {
		return ReasonCardExpired
	}
	return ""
}

// ValidNumber reports whether number (spaces and dashes allowed) is 12 to 19
// digits and passes the Luhn check.
func ValidNumber(number string) bool {
	digits := strings.NewReplacer(" ", "", "-", "").Replace(number)
	if len(digits) < 12 || len(digits) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if d < 0 || d > 9 {
			return false
		}
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// ParseExpiry turns MM/YY into the first instant after the card stops being valid.
func ParseExpiry(expiry string) (time.Time, error) {
	m := expiryPattern.FindStringSubmatch(strings.TrimSpace(expiry))
	if m == nil {
		return time.Time{}, errs.Newf("expiry %q is not MM/YY", expiry)
	}
	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	return time.Date(2000+year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC), nil
}

// Mask keeps the last four digits.
func Mask(number string) string {
	digits := strings.NewReplacer(" ", "", "-", "").Replace(number)
	if len(digits) <= 4 {
		return strings.Repeat("*", len(digits))
	}
	return fmt.Sprintf("%s%s", strings.Repeat("*", len(digits)-4), digits[len(digits)-4:])
}
