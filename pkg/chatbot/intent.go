package chatbot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/artem13815/productbot/pkg/logger"
	"github.com/artem13815/productbot/pkg/metrics"
)

const intentSchemaJSON = `{
  "type": "object",
  "required": ["intent"],
  "properties": {
    "intent": {
      "type": "string",
      "enum": ["product_info", "price_inquiry", "rating_inquiry", "category_search", "general_inquiry"]
    },
    "product_name": {"type": ["string", "null"]},
    "category": {"type": ["string", "null"]},
    "rating_threshold": {"type": ["number", "null"], "minimum": 0, "maximum": 5}
  }
}`

var intentSchema = mustSchema(intentSchemaJSON)

var errNoJSONObject = errors.New("no JSON object in model output")

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("chatbot: invalid intent schema: %v", err))
	}
	return s
}

// extractIntent never fails: any problem yields DefaultIntent.
func (s *service) extractIntent(ctx context.Context, message string) Intent {
	defer metrics.ObserveStage("intent", time.Now())
	l := logger.FromContext(ctx, s.log)

	callCtx, cancel := withTimeout(ctx, s.opts.LLMTimeout)
	defer cancel()

	raw, err := s.llm.Ask(callCtx, intentSystemPrompt, message)
	if err != nil {
		l.Warn("intent extraction failed, using default intent", zap.Error(err))
		metrics.Degradations.WithLabelValues("intent").Inc()
		return DefaultIntent()
	}
	intent, err := parseIntent(raw)
	if err != nil {
		l.Warn("unusable intent output, using default intent", zap.Error(err), zap.String("raw", raw))
		metrics.Degradations.WithLabelValues("intent").Inc()
		return DefaultIntent()
	}
	l.Debug("intent extracted", zap.String("intent", string(intent.Kind)))
	return intent
}

// parseIntent takes the first JSON object found in raw, validates it against
// the intent schema and decodes it.
func parseIntent(raw string) (Intent, error) {
	obj, ok := firstJSONObject(raw)
	if !ok {
		return Intent{}, errNoJSONObject
	}
	res, err := intentSchema.Validate(gojsonschema.NewBytesLoader(obj))
	if err != nil {
		return Intent{}, fmt.Errorf("validate intent: %w", err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return Intent{}, fmt.Errorf("intent does not match schema: %s", strings.Join(msgs, "; "))
	}
	var out Intent
	if err := json.Unmarshal(obj, &out); err != nil {
		return Intent{}, fmt.Errorf("decode intent: %w", err)
	}
	return out.normalize(), nil
}

// firstJSONObject returns the earliest '{' from which a complete JSON object
// decodes. Text before and after it is ignored.
func firstJSONObject(raw string) (json.RawMessage, bool) {
	for i := strings.IndexByte(raw, '{'); i >= 0; {
		var obj json.RawMessage
		if err := json.NewDecoder(strings.NewReader(raw[i:])).Decode(&obj); err == nil {
			return obj, true
		}
		next := strings.IndexByte(raw[i+1:], '{')
		if next < 0 {
			break
		}
		i += next + 1
	}
	return nil, false
}
