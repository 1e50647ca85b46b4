package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"class-search-server/db"
	"class-search-server/vocab"
)

const VOCAB_VALUES_KEY_FORMAT_V1 = "vocab_values_v1:%s"

// VOCAB_KEYWORD_KEY_FORMAT_V1 is used to cache resolved keyword suggestions.
const VOCAB_KEYWORD_KEY_FORMAT_V1 = "vocab_keyword_v1:%s"

// RedisVocabularyDAO persists filter vocabulary values using Redis.
type RedisVocabularyDAO struct {
	client db.RedisClient
}

// NewRedisVocabularyDAO initializes a RedisVocabularyDAO with the Redis client.
func NewRedisVocabularyDAO(client db.RedisClient) *RedisVocabularyDAO {
	return &RedisVocabularyDAO{client: client}
}

// UpsertFieldValues stores the known values for a filter field.
func (dao *RedisVocabularyDAO) UpsertFieldValues(field string, values []string) error {
	key := fmt.Sprintf(VOCAB_VALUES_KEY_FORMAT_V1, field)
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to marshal vocabulary values for field %s: %w", field, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set vocabulary values in redis: %w", err)
	}
	return nil
}

// GetFieldValues retrieves the cached values for a filter field.
// A cache miss returns nil values and no error.
func (dao *RedisVocabularyDAO) GetFieldValues(field string) ([]string, error) {
	key := fmt.Sprintf(VOCAB_VALUES_KEY_FORMAT_V1, field)
	str, err := dao.client.Get(key)
	if err != nil {
		if strings.Contains(err.Error(), "nil") {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vocabulary values from redis: %w", err)
	}
	var values []string
	if err := json.Unmarshal([]byte(str), &values); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vocabulary values JSON: %w", err)
	}
	return values, nil
}

// ListCachedFields returns the field names for all cached vocabulary values.
func (dao *RedisVocabularyDAO) ListCachedFields() ([]string, error) {
	pattern := fmt.Sprintf(VOCAB_VALUES_KEY_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list vocabulary keys: %w", err)
	}

	prefix := fmt.Sprintf(VOCAB_VALUES_KEY_FORMAT_V1, "")
	fields := make([]string, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, strings.TrimPrefix(k, prefix))
	}
	return fields, nil
}

// DeleteFieldValues removes the cached values for a filter field.
func (dao *RedisVocabularyDAO) DeleteFieldValues(field string) error {
	key := fmt.Sprintf(VOCAB_VALUES_KEY_FORMAT_V1, field)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete vocabulary key %s: %w", key, err)
	}
	log.Printf("[RedisVocabularyDAO] Deleted vocabulary cache for %s", field)
	return nil
}

// UpsertKeywordSuggestions caches the resolved suggestions for a keyword.
func (dao *RedisVocabularyDAO) UpsertKeywordSuggestions(keyword string, suggestions []vocab.Suggestion) error {
	key := fmt.Sprintf(VOCAB_KEYWORD_KEY_FORMAT_V1, keyword)
	data, err := json.Marshal(suggestions)
	if err != nil {
		return fmt.Errorf("failed to marshal suggestions for keyword %s: %w", keyword, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set keyword suggestions in redis: %w", err)
	}
	return nil
}

// GetKeywordSuggestions retrieves cached suggestions for a keyword.
// A cache miss returns nil suggestions and no error.
func (dao *RedisVocabularyDAO) GetKeywordSuggestions(keyword string) ([]vocab.Suggestion, error) {
	key := fmt.Sprintf(VOCAB_KEYWORD_KEY_FORMAT_V1, keyword)
	str, err := dao.client.Get(key)
	if err != nil {
		if strings.Contains(err.Error(), "nil") {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get keyword suggestions from redis: %w", err)
	}
	var suggestions []vocab.Suggestion
	if err := json.Unmarshal([]byte(str), &suggestions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal keyword suggestions JSON: %w", err)
	}
	return suggestions, nil
}

// LoadAll reads every cached field's values, for warm-starting the
// vocabulary store before the first refresh completes.
func (dao *RedisVocabularyDAO) LoadAll() (map[string][]string, error) {
	fields, err := dao.ListCachedFields()
	if err != nil {
		return nil, err
	}

	values := make(map[string][]string, len(fields))
	for _, field := range fields {
		fieldValues, err := dao.GetFieldValues(field)
		if err != nil {
			return nil, err
		}
		if fieldValues != nil {
			values[field] = fieldValues
		}
	}
	return values, nil
}

// LoadAllKeywords reads every cached keyword's suggestions. Operators can
// extend the keyword table by adding rows under the keyword key format.
func (dao *RedisVocabularyDAO) LoadAllKeywords() (map[string][]vocab.Suggestion, error) {
	keys, err := dao.client.Keys(fmt.Sprintf(VOCAB_KEYWORD_KEY_FORMAT_V1, "*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list keyword keys: %w", err)
	}

	prefix := fmt.Sprintf(VOCAB_KEYWORD_KEY_FORMAT_V1, "")
	keywords := make(map[string][]vocab.Suggestion, len(keys))
	for _, k := range keys {
		keyword := strings.TrimPrefix(k, prefix)
		suggestions, err := dao.GetKeywordSuggestions(keyword)
		if err != nil {
			return nil, err
		}
		if suggestions != nil {
			keywords[keyword] = suggestions
		}
	}
	return keywords, nil
}
