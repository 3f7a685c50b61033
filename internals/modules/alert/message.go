package alert

import (
	"fmt"
	"strings"
	"time"

	"canary/config"
	"canary/internals/modules/probe"
)

// ComposeSubject varies singular vs plural depending on how many sites
// are down.
func ComposeSubject(failed []probe.Result, notif config.Notification) string {
	prefix := notif.SubjectPrefix
	if prefix == "" {
		prefix = "[WEBSITE ALERT]"
	}

	if len(failed) == 1 {
		return fmt.Sprintf("%s %s is down", prefix, failed[0].Name)
	}
	return fmt.Sprintf("%s %d websites are down", prefix, len(failed))
}

// ComposeBody lists every failure with its URL, timestamp, error and, when
// a response was received, status code and response time.
func ComposeBody(failed []probe.Result) string {
	var sb strings.Builder
	sb.WriteString("Website monitoring alert:\n\n")

	for _, check := range failed {
		fmt.Fprintf(&sb, "❌ %s\n", check.Name)
		fmt.Fprintf(&sb, "   URL: %s\n", check.URL)
		fmt.Fprintf(&sb, "   Time: %s\n", check.Timestamp)
		fmt.Fprintf(&sb, "   Error: %s\n", check.Error)
		if check.StatusCode != nil {
			fmt.Fprintf(&sb, "   Status Code: %d\n", *check.StatusCode)
		}
		if check.ResponseTime != nil {
			fmt.Fprintf(&sb, "   Response Time: %gs\n", *check.ResponseTime)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Check performed at: %s\n", time.Now().UTC().Format("2006-01-02 15:04:05 UTC"))
	sb.WriteString("This alert was sent by Canary via GitHub Actions")

	return sb.String()
}
