package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/jaxfield/assistant/agent/contract"
)

// logInsightByName resolves the named person against contacts and logs the
// whole message as an insight. An unknown name is a clarification turn, not
// an error: the write is withheld until the user identifies the person.
func (d *Dispatcher) logInsightByName(ctx context.Context, name, insight string) contract.ChatReply {
	contacts, err := d.store.Contacts(ctx, name, "")
	if err != nil {
		return contract.ChatReply{
			Response: fmt.Sprintf("I had trouble searching your contacts: %v", err),
			Source:   contract.SourceError,
		}
	}

	if len(contacts) == 0 {
		return contract.ChatReply{
			Response: fmt.Sprintf(
				"I don't have **%s** in your contacts yet. Before I can save this insight, I need a little more info:\n\n"+
					"1. **Full name** (first and last)\n"+
					"2. **Position / title** (e.g., Store Manager, Market Lead)\n"+
					"3. **Store number**\n\n"+
					"Once you give me those, I'll add them to your contacts and log this right away!",
				titleCase(name),
			),
			Source: contract.SourceTemplateFormatted,
		}
	}

	contact := contacts[0]
	if err := d.store.LogAssociateInsight(ctx, contact.ID, insight); err != nil {
		return contract.ChatReply{
			Response: fmt.Sprintf("I found %s in your contacts but couldn't log the insight: %v", contact.Name, err),
			Source:   contract.SourceError,
		}
	}

	return contract.ChatReply{
		Response: fmt.Sprintf(
			"✓ Got it! I've logged that **%s** said:\n\n> %s\n\n"+
				"This will now appear in their profile under Recent Insights on the Contacts page.",
			contact.Name, insight,
		),
		Source: contract.SourceTemplateFormatted,
	}
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
