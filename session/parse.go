package session

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseIntervals parses a "work[,break]" minute-pair string, e.g.
// "30,10" or "20". When break is omitted the default break length is
// used. Zero or malformed minutes are rejected here so the timer never
// sees an invalid duration.
func ParseIntervals(input string) (work, brk time.Duration, err error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, 0, fmt.Errorf("empty interval string")
	}

	workPart := input
	brkPart := ""
	hasBreak := strings.Contains(input, ",")
	if hasBreak {
		parts := strings.Split(input, ",")
		if len(parts) != 2 {
			return 0, 0, fmt.Errorf("invalid format %q: use \"work,break\" or \"work\"", input)
		}
		workPart = strings.TrimSpace(parts[0])
		brkPart = strings.TrimSpace(parts[1])
	}

	workMins, err := strconv.Atoi(workPart)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid work minutes %q", workPart)
	}
	if workMins <= 0 {
		return 0, 0, fmt.Errorf("work minutes must be greater than 0")
	}
	work = time.Duration(workMins) * time.Minute

	if !hasBreak {
		return work, DefaultBreakDuration, nil
	}

	brkMins, err := strconv.Atoi(brkPart)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid break minutes %q", brkPart)
	}
	if brkMins <= 0 {
		return 0, 0, fmt.Errorf("break minutes must be greater than 0")
	}
	return work, time.Duration(brkMins) * time.Minute, nil
}

// FormatDuration renders a duration as MM:SS for display
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
