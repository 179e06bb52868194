package domain

import (
	"fmt"
	"strings"
)

// DefaultPersona is the assistant's standing introduction. It can be
// overridden through the prompt store; the rest of the instruction
// string is fixed.
const DefaultPersona = "You are a friendly assistant named Oracle."

// BotChallengeMarker is the text of the anti-bot interstitial some sites
// serve instead of content. The instruction prompt tells the model to
// suggest reloading when the document looks like this page.
const BotChallengeMarker = "Just a moment...Enable JavaScript and cookies to continue"

// systemPromptBody frames the document for the model. Placeholders:
// document type, document text, bot-challenge marker.
const systemPromptBody = `You have access to the following information from a document of type %s:

####
%s
####

Use the provided information as a basis for your responses.

Whenever you encounter $ in your output, replace it with S.

If the document contains something like "%s"
suggest the user reload the Oracle!`

// SystemPrompt builds the full instruction string for a loaded document,
// embedding the document type and its complete text verbatim.
func SystemPrompt(docType SourceType, content string) string {
	return SystemPromptWithPersona(DefaultPersona, docType, content)
}

// SystemPromptWithPersona builds the instruction string with a custom
// persona line. A blank persona falls back to the default.
func SystemPromptWithPersona(persona string, docType SourceType, content string) string {
	persona = strings.TrimSpace(persona)
	if persona == "" {
		persona = DefaultPersona
	}
	return persona + "\n" + fmt.Sprintf(systemPromptBody, docType, content, BotChallengeMarker)
}
