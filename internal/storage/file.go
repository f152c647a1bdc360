package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/sammeh543/CycleTrackApp-sub001/internal"
)

// FileStorage keeps everything in memory and persists each resource to its
// own JSON file. Writes are debounced: mutations signal a per-resource save
// worker which flushes after a short quiet period, so bursts of logging do
// not hammer the disk.
type FileStorage struct {
	flowLogs       map[string]*internal.FlowLog      // id -> FlowLog
	userFlowIndex  map[string][]*internal.FlowLog    // userID -> logs ascending by date
	cycles         map[string]*internal.CycleRecord  // id -> CycleRecord
	userCycleIndex map[string][]*internal.CycleRecord // userID -> records ascending by start date
	symptoms       map[string][]*internal.SymptomLog // userID -> logs ascending by date
	settings       map[string]*internal.UserSettings // userID -> settings
	mu             sync.RWMutex

	flowFile     string
	cyclesFile   string
	symptomsFile string
	settingsFile string

	saveFlowChan     chan struct{}
	saveCyclesChan   chan struct{}
	saveSymptomsChan chan struct{}
	saveSettingsChan chan struct{}
	shutdownChan     chan struct{}
	saveDelay        time.Duration
	logger           internal.Logger
}

func NewFileStorage(flowFile, cyclesFile, symptomsFile, settingsFile string, logger internal.Logger) (*FileStorage, error) {
	s := &FileStorage{
		flowLogs:         make(map[string]*internal.FlowLog),
		userFlowIndex:    make(map[string][]*internal.FlowLog),
		cycles:           make(map[string]*internal.CycleRecord),
		userCycleIndex:   make(map[string][]*internal.CycleRecord),
		symptoms:         make(map[string][]*internal.SymptomLog),
		settings:         make(map[string]*internal.UserSettings),
		flowFile:         flowFile,
		cyclesFile:       cyclesFile,
		symptomsFile:     symptomsFile,
		settingsFile:     settingsFile,
		saveFlowChan:     make(chan struct{}, 1),
		saveCyclesChan:   make(chan struct{}, 1),
		saveSymptomsChan: make(chan struct{}, 1),
		saveSettingsChan: make(chan struct{}, 1),
		shutdownChan:     make(chan struct{}),
		saveDelay:        500 * time.Millisecond,
		logger:           logger,
	}

	if err := s.loadFlowLogs(); err != nil {
		logger.Errorf("storage: failed to load flow logs: %v", err)
		return nil, err
	}
	if err := s.loadCycles(); err != nil {
		logger.Errorf("storage: failed to load cycle records: %v", err)
		return nil, err
	}
	if err := s.loadSymptoms(); err != nil {
		logger.Errorf("storage: failed to load symptom logs: %v", err)
		return nil, err
	}
	if err := s.loadSettings(); err != nil {
		logger.Errorf("storage: failed to load settings: %v", err)
		return nil, err
	}

	go s.saveWorker(s.saveFlowChan, "flow logs", s.saveFlowLogs)
	go s.saveWorker(s.saveCyclesChan, "cycle records", s.saveCycles)
	go s.saveWorker(s.saveSymptomsChan, "symptom logs", s.saveSymptoms)
	go s.saveWorker(s.saveSettingsChan, "settings", s.saveSettings)

	return s, nil
}

func decodeJSONFile(path string, out interface{}) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

func (s *FileStorage) loadFlowLogs() error {
	var logs []*internal.FlowLog
	if err := decodeJSONFile(s.flowFile, &logs); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range logs {
		s.flowLogs[l.ID] = l
		s.userFlowIndex[l.UserID] = append(s.userFlowIndex[l.UserID], l)
	}
	for userID := range s.userFlowIndex {
		sortFlowLogs(s.userFlowIndex[userID])
	}
	return nil
}

func (s *FileStorage) loadCycles() error {
	var records []*internal.CycleRecord
	if err := decodeJSONFile(s.cyclesFile, &records); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		s.cycles[r.ID] = r
		s.userCycleIndex[r.UserID] = append(s.userCycleIndex[r.UserID], r)
	}
	for userID := range s.userCycleIndex {
		sortCycleRecords(s.userCycleIndex[userID])
	}
	return nil
}

func (s *FileStorage) loadSymptoms() error {
	var logs []*internal.SymptomLog
	if err := decodeJSONFile(s.symptomsFile, &logs); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range logs {
		s.symptoms[l.UserID] = append(s.symptoms[l.UserID], l)
	}
	for userID := range s.symptoms {
		logs := s.symptoms[userID]
		sort.Slice(logs, func(i, j int) bool { return logs[i].Date < logs[j].Date })
	}
	return nil
}

func (s *FileStorage) loadSettings() error {
	var all []*internal.UserSettings
	if err := decodeJSONFile(s.settingsFile, &all); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range all {
		s.settings[st.UserID] = st
	}
	return nil
}

func sortFlowLogs(logs []*internal.FlowLog) {
	sort.Slice(logs, func(i, j int) bool { return logs[i].Date < logs[j].Date })
}

func sortCycleRecords(records []*internal.CycleRecord) {
	sort.Slice(records, func(i, j int) bool { return records[i].StartDate < records[j].StartDate })
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStorage) saveFlowLogs() error {
	s.mu.RLock()
	logs := make([]*internal.FlowLog, 0, len(s.flowLogs))
	for _, l := range s.flowLogs {
		logs = append(logs, l)
	}
	s.mu.RUnlock()
	return atomicWriteFileJSON(s.flowFile, logs)
}

func (s *FileStorage) saveCycles() error {
	s.mu.RLock()
	records := make([]*internal.CycleRecord, 0, len(s.cycles))
	for _, r := range s.cycles {
		records = append(records, r)
	}
	s.mu.RUnlock()
	return atomicWriteFileJSON(s.cyclesFile, records)
}

func (s *FileStorage) saveSymptoms() error {
	s.mu.RLock()
	logs := make([]*internal.SymptomLog, 0)
	for _, userLogs := range s.symptoms {
		logs = append(logs, userLogs...)
	}
	s.mu.RUnlock()
	return atomicWriteFileJSON(s.symptomsFile, logs)
}

func (s *FileStorage) saveSettings() error {
	s.mu.RLock()
	all := make([]*internal.UserSettings, 0, len(s.settings))
	for _, st := range s.settings {
		all = append(all, st)
	}
	s.mu.RUnlock()
	return atomicWriteFileJSON(s.settingsFile, all)
}

// saveWorker batches save operations for one resource to avoid frequent
// disk writes.
func (s *FileStorage) saveWorker(trigger <-chan struct{}, what string, save func() error) {
	timer := time.NewTimer(s.saveDelay)
	defer timer.Stop()

	for {
		select {
		case <-trigger:
			timer.Reset(s.saveDelay)
		case <-timer.C:
			if err := save(); err != nil {
				s.logger.Errorf("storage: error saving %s: %v", what, err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// Close stops the background workers and flushes pending data synchronously.
func (s *FileStorage) Close() error {
	close(s.shutdownChan)

	if err := s.saveFlowLogs(); err != nil {
		return err
	}
	if err := s.saveCycles(); err != nil {
		return err
	}
	if err := s.saveSymptoms(); err != nil {
		return err
	}
	return s.saveSettings()
}

// --- FlowRepository ---

func (s *FileStorage) SaveFlowLog(ctx context.Context, log *internal.FlowLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// One logical entry per date: replace any existing log on the same day.
	logs := s.userFlowIndex[log.UserID]
	for i, existing := range logs {
		if existing.Date == log.Date {
			delete(s.flowLogs, existing.ID)
			logs = append(logs[:i], logs[i+1:]...)
			break
		}
	}

	s.flowLogs[log.ID] = log
	logs = append(logs, log)
	sortFlowLogs(logs)
	s.userFlowIndex[log.UserID] = logs

	signal(s.saveFlowChan)
	return nil
}

func (s *FileStorage) ListFlowLogs(ctx context.Context, userID string) ([]internal.FlowLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	logsPtr, ok := s.userFlowIndex[userID]
	if !ok {
		return []internal.FlowLog{}, nil
	}
	logs := make([]internal.FlowLog, len(logsPtr))
	for i, l := range logsPtr {
		logs[i] = *l
	}
	return logs, nil
}

func (s *FileStorage) DeleteFlowLog(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log, ok := s.flowLogs[id]
	if !ok || log.UserID != userID {
		return ErrNotFound
	}
	delete(s.flowLogs, id)

	logs := s.userFlowIndex[userID]
	for i, existing := range logs {
		if existing.ID == id {
			s.userFlowIndex[userID] = append(logs[:i], logs[i+1:]...)
			break
		}
	}

	signal(s.saveFlowChan)
	return nil
}

// --- CycleRepository ---

func (s *FileStorage) SaveCycleRecord(ctx context.Context, rec *internal.CycleRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.cycles[rec.ID]; !exists {
		s.userCycleIndex[rec.UserID] = append(s.userCycleIndex[rec.UserID], rec)
	} else {
		for i, existing := range s.userCycleIndex[rec.UserID] {
			if existing.ID == rec.ID {
				s.userCycleIndex[rec.UserID][i] = rec
				break
			}
		}
	}
	s.cycles[rec.ID] = rec
	sortCycleRecords(s.userCycleIndex[rec.UserID])

	signal(s.saveCyclesChan)
	return nil
}

func (s *FileStorage) GetCycleRecord(ctx context.Context, userID, id string) (*internal.CycleRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.cycles[id]
	if !ok || rec.UserID != userID {
		return nil, ErrNotFound
	}
	copied := *rec
	return &copied, nil
}

func (s *FileStorage) ListCycleRecords(ctx context.Context, userID string) ([]internal.CycleRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recordsPtr, ok := s.userCycleIndex[userID]
	if !ok {
		return []internal.CycleRecord{}, nil
	}
	records := make([]internal.CycleRecord, len(recordsPtr))
	for i, r := range recordsPtr {
		records[i] = *r
	}
	return records, nil
}

// --- SymptomRepository ---

func (s *FileStorage) SaveSymptomLog(ctx context.Context, log *internal.SymptomLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logs := append(s.symptoms[log.UserID], log)
	sort.Slice(logs, func(i, j int) bool { return logs[i].Date < logs[j].Date })
	s.symptoms[log.UserID] = logs

	signal(s.saveSymptomsChan)
	return nil
}

func (s *FileStorage) ListSymptomLogs(ctx context.Context, userID string) ([]internal.SymptomLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	logsPtr, ok := s.symptoms[userID]
	if !ok {
		return []internal.SymptomLog{}, nil
	}
	logs := make([]internal.SymptomLog, len(logsPtr))
	for i, l := range logsPtr {
		logs[i] = *l
	}
	return logs, nil
}

// --- SettingsRepository ---

func (s *FileStorage) SaveSettings(ctx context.Context, settings *internal.UserSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[settings.UserID] = settings

	signal(s.saveSettingsChan)
	return nil
}

func (s *FileStorage) GetSettings(ctx context.Context, userID string) (*internal.UserSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.settings[userID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *st
	return &copied, nil
}

// --- Compile-time assertions ---
var _ FlowRepository = (*FileStorage)(nil)
var _ CycleRepository = (*FileStorage)(nil)
var _ SymptomRepository = (*FileStorage)(nil)
var _ SettingsRepository = (*FileStorage)(nil)
