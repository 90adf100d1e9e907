package view

import (
	"fmt"
	"io"
	"text/tabwriter"

	"rulesconsole/internal/collections"
	"rulesconsole/internal/models"
)

// unknownRuleImage is shown for rules created without an image
const unknownRuleImage = "unknown-rule.png"

// RenderRules writes the rules table
func RenderRules(w io.Writer, rules []models.Rule) {
	if len(rules) == 0 {
		fmt.Fprintln(w, "No Data Available...")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "IMAGE\tDEVICE ID\tTITLE\tUSER ID\tUSER\tSEND EMAIL\tCREATED AT\tUPDATED AT")
	for _, r := range rules {
		image := r.ImageURL
		if image == "" {
			image = unknownRuleImage
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			image, r.DeviceID, r.DeviceName, r.UserID, r.UserName, r.EmailStatus, r.DateCreated, r.DateUpdated)
	}
	tw.Flush()
}

// RenderUserOptions writes the numbered user choices for the form
func RenderUserOptions(w io.Writer, users []models.User) {
	for i, u := range users {
		fmt.Fprintf(w, "  %d) %s\n", i+1, u.FullName)
	}
}

// RenderDeviceOptions writes the numbered device choices for the form
func RenderDeviceOptions(w io.Writer, devices []models.Device) {
	for i, d := range devices {
		fmt.Fprintf(w, "  %d) %s\n", i+1, d.Title)
	}
}

// RenderSummary writes the collection counts line
func RenderSummary(w io.Writer, snap collections.Snapshot) {
	fmt.Fprintf(w, "%d users, %d devices, %d rules\n", len(snap.Users), len(snap.Devices), len(snap.Rules))
}
