package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func flushTable(tw *tabwriter.Writer) error {
	if err := tw.Flush(); err != nil {
		return goerr.Wrap(err, "failed to write output")
	}
	return nil
}

func renderMembers(w io.Writer, members []*model.Member) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, m := range members {
		fmt.Fprintf(tw, "%s\t%s\n", m.ID, m.DisplayName())
	}
	return flushTable(tw)
}

func renderChannels(w io.Writer, channels []*model.Channel) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tPRIVATE\tARCHIVED")
	for _, ch := range channels {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%t\n", ch.ID, ch.Name, ch.IsPrivate, ch.IsArchived)
	}
	return flushTable(tw)
}

// renderReport prints one row per batch followed by the summary counters
func renderReport(w io.Writer, report *model.InvitationReport, unresolved []model.ChannelSelector) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "CHANNEL\tMEMBERS\tSTATUS\tDETAIL")
	for _, o := range report.Outcomes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", o.Channel, batchLabel(o.Batch.Members), o.Status, o.Detail)
	}
	for _, s := range unresolved {
		fmt.Fprintf(tw, "%s\t-\tnot-found\tchannel could not be resolved\n", s)
	}
	if err := flushTable(tw); err != nil {
		return err
	}

	s := report.Summary()
	fmt.Fprintf(w, "\nrun %s: %d batches, %d accepted, %d already-member, %d channel-not-joined, %d other-error\n",
		report.RunID, s.Batches, s.Accepted, s.AlreadyMember, s.ChannelNotJoined, s.OtherError)
	return nil
}

func batchLabel(ids []types.MemberID) string {
	if len(ids) <= 3 {
		return strings.Join(types.MemberIDStrings(ids), ",")
	}
	return fmt.Sprintf("%s..%s (%d)", ids[0], ids[len(ids)-1], len(ids))
}
