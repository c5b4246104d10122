// Package content post-processes model output before it reaches the user.
//
// Chat-tuned models tend to close explanations with follow-up questions
// ("Is there anything else you'd like me to clarify?") even when instructed
// not to. The Cleaner removes them: a compiled pattern list strips known
// phrasings anywhere in the text, then trailing interrogative lines are
// trimmed and leftover blank runs collapsed.
package content
