package generator

import (
	"fmt"
	"strings"

	"linkpost-api/core/domain"
	"linkpost-api/core/interfaces"
)

const systemPrompt = "You are a social media expert who creates engaging tweets. Always respond with valid JSON."

// styleGuidance describes each variant style to the model, in output order
var styleGuidance = map[domain.Style]string{
	domain.StyleConcise:  "Brief and to the point",
	domain.StyleDetailed: "More informative with key details",
	domain.StyleCasual:   "Conversational and approachable",
}

// BuildPrompt embeds the instruction, tone and digest into a single prompt
// asking for three variants in the fixed style order
func BuildPrompt(digest *domain.PageDigest, instruction string, tone domain.Tone, temperature float64, maxTokens int) interfaces.Prompt {
	var b strings.Builder

	fmt.Fprintf(&b, "Based on the following webpage content, %s\n\n", instruction)
	fmt.Fprintf(&b, "Webpage Title: %s\n", digest.Title)
	fmt.Fprintf(&b, "Description: %s\n", digest.MetaDescription)
	fmt.Fprintf(&b, "Key Headings: %s\n", digest.HeadingsText())
	fmt.Fprintf(&b, "Content: %s\n\n", digest.Content)

	fmt.Fprintf(&b, "Generate %d different tweet options with these requirements:\n", len(domain.VariantStyles))
	fmt.Fprintf(&b, "- Each tweet must be under %d characters\n", domain.MaxPostLength)
	fmt.Fprintf(&b, "- Overall tone should be: %s\n", tone)
	b.WriteString("- Make them engaging and shareable\n")
	b.WriteString("- Include relevant hashtags if appropriate\n\n")

	fmt.Fprintf(&b, "Create %d variations:\n", len(domain.VariantStyles))
	for i, style := range domain.VariantStyles {
		fmt.Fprintf(&b, "%d. %s style - %s\n", i+1, style, styleGuidance[style])
	}
	b.WriteString("\nFormat the response as JSON array with objects containing 'style' and 'text' fields.")

	return interfaces.Prompt{
		System:      systemPrompt,
		User:        b.String(),
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
}
