package extraction

import "strings"

const extractionPrompt = `Analyze the following note and extract structured information as JSON.

Return a JSON object with these keys:
- "action_items": list of objects with "description" (string) and "due_date" (string, ISO date or empty)
- "contacts": list of objects with "name" (string), "phone" (string or empty), "email" (string or empty)
- "reminders": list of objects with "contact_name" (string, must match a contact name), "type" ("call" or "follow_up"), "message" (string), "due_date" (string, ISO date or empty)

Rules:
- Only extract information explicitly mentioned or strongly implied in the note
- For due dates, interpret relative dates like "Monday" or "next week" relative to today ({today})
- If no items found for a category, return an empty list
- Return ONLY valid JSON, no markdown fences or extra text

Note title: {title}
Note content:
{content}
`

const imageTextPrompt = "Extract all text from this image. Preserve the original " +
	"structure, line breaks, and formatting as closely as possible. " +
	"Return only the extracted text with no additional commentary."

func buildExtractionPrompt(title, content, today string) string {
	return strings.NewReplacer(
		"{today}", today,
		"{title}", title,
		"{content}", content,
	).Replace(extractionPrompt)
}
