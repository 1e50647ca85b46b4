package services

import (
	"log"
	"time"

	"class-search-server/api/classsearch"
	"class-search-server/config"
	"class-search-server/dao/redis"
	"class-search-server/vocab"
)

// VocabularyRefresherService periodically rebuilds the filter vocabulary
// from the index API, falling back to the Redis cache for fields the API
// cannot serve.
type VocabularyRefresherService struct {
	classSearchApi classsearch.ClassSearchAPI
	vocabularyDao  *redis.RedisVocabularyDAO
	store          *vocab.Store
	term           string
}

// NewVocabularyRefresherService constructs a new refresher with its
// dependencies.
func NewVocabularyRefresherService(
	classSearchApi classsearch.ClassSearchAPI,
	vocabularyDao *redis.RedisVocabularyDAO,
	store *vocab.Store,
	term string,
) *VocabularyRefresherService {
	return &VocabularyRefresherService{
		classSearchApi: classSearchApi,
		vocabularyDao:  vocabularyDao,
		store:          store,
		term:           term,
	}
}

// StartPeriodicJob launches the background refresh loop at the given interval.
func (vr *VocabularyRefresherService) StartPeriodicJob(interval time.Duration) {
	go vr.startPeriodicJob(interval)
}

func (vr *VocabularyRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[VocabularyRefresherService] Running periodic vocabulary refresher job.")
		if err := vr.RefreshVocabularyData(); err != nil {
			log.Printf("[VocabularyRefresherService] RefreshVocabularyData returned error: %v", err)
		} else {
			log.Println("[VocabularyRefresherService] RefreshVocabularyData completed successfully.")
		}
	}
}

// WarmStartFromCache swaps in whatever vocabulary Redis still holds from a
// previous run, so resolution works before the first refresh completes.
func (vr *VocabularyRefresherService) WarmStartFromCache() error {
	values, err := vr.vocabularyDao.LoadAll()
	if err != nil {
		return err
	}
	keywords, err := vr.vocabularyDao.LoadAllKeywords()
	if err != nil {
		return err
	}
	if len(values) == 0 && len(keywords) == 0 {
		log.Println("[VocabularyRefresherService] No cached vocabulary to warm-start from.")
		return nil
	}
	log.Printf("[VocabularyRefresherService] Warm-starting vocabulary from cache (%d fields, %d keywords)", len(values), len(keywords))
	snap := vocab.BuildSnapshot(values)
	snap.AddKeywords(keywords)
	vr.store.Swap(snap)
	return nil
}

// RefreshVocabularyData enumerates each filterable field's distinct values
// from the index API, persists them, and swaps in a fresh snapshot.
func (vr *VocabularyRefresherService) RefreshVocabularyData() error {
	values := make(map[string][]string, len(vocab.EnumerableFields))

	log.Printf("[VocabularyRefresherService] Refreshing vocabulary for %d fields (term=%s)", len(vocab.EnumerableFields), vr.term)
	for _, field := range vocab.EnumerableFields {
		indexField, ok := vocab.IndexFieldName(field)
		if !ok {
			log.Printf("[VocabularyRefresherService] Skipping field %s: no index field mapping", field)
			continue
		}

		options, err := vr.classSearchApi.GetFilterOptions(vr.term, indexField)
		if err != nil {
			log.Printf("[VocabularyRefresherService] GetFilterOptions failed for %s: %v, falling back to cache", field, err)
			cached, cacheErr := vr.vocabularyDao.GetFieldValues(field)
			if cacheErr != nil || cached == nil {
				log.Printf("[VocabularyRefresherService] No cached values for %s, skipping", field)
				continue
			}
			values[field] = cached
			continue
		}

		fieldValues := make([]string, 0, len(options))
		for _, opt := range options {
			if opt.Value != "" {
				fieldValues = append(fieldValues, opt.Value)
			}
		}
		values[field] = fieldValues

		if err := vr.vocabularyDao.UpsertFieldValues(field, fieldValues); err != nil {
			log.Printf("[VocabularyRefresherService] Upsert failed for %s: %v", field, err)
		} else {
			log.Printf("[VocabularyRefresherService] Refreshed %s with %d values", field, len(fieldValues))
		}
	}

	if len(values) == 0 {
		log.Println("[VocabularyRefresherService] No fields refreshed; keeping current snapshot.")
		return nil
	}

	vr.pruneStaleFields()

	snap := vocab.BuildSnapshot(values)
	vr.syncKeywordTable(snap)
	vr.store.Swap(snap)
	log.Printf("[VocabularyRefresherService] Swapped in vocabulary snapshot with %d fields", len(values))
	return nil
}

// syncKeywordTable persists the builtin keyword table so operators can
// inspect and extend it in Redis, and merges the cached rows back into the
// snapshot. A cached row wins over the builtin with the same keyword.
func (vr *VocabularyRefresherService) syncKeywordTable(snap *vocab.Snapshot) {
	cached, err := vr.vocabularyDao.LoadAllKeywords()
	if err != nil {
		log.Printf("[VocabularyRefresherService] LoadAllKeywords failed: %v; keeping builtin keyword table", err)
		return
	}

	for keyword, suggestions := range snap.Keywords {
		if _, ok := cached[keyword]; ok {
			continue
		}
		if err := vr.vocabularyDao.UpsertKeywordSuggestions(keyword, suggestions); err != nil {
			log.Printf("[VocabularyRefresherService] Upserting keyword %q failed: %v", keyword, err)
		}
	}
	snap.AddKeywords(cached)
}

// pruneStaleFields drops cached value sets for fields the engine no longer
// enumerates, so the cache an operator inspects matches the live field set.
func (vr *VocabularyRefresherService) pruneStaleFields() {
	cached, err := vr.vocabularyDao.ListCachedFields()
	if err != nil {
		log.Printf("[VocabularyRefresherService] ListCachedFields failed: %v", err)
		return
	}

	enumerable := make(map[string]bool, len(vocab.EnumerableFields))
	for _, field := range vocab.EnumerableFields {
		enumerable[field] = true
	}
	for _, field := range cached {
		if enumerable[field] {
			continue
		}
		if err := vr.vocabularyDao.DeleteFieldValues(field); err != nil {
			log.Printf("[VocabularyRefresherService] Pruning stale field %s failed: %v", field, err)
		}
	}
}

// RefreshInterval returns the configured refresh cadence.
func RefreshInterval() time.Duration {
	return time.Duration(config.VOCAB_REFRESHER_SCHEDULE_MINUTES) * time.Minute
}
