package domain

import "fmt"

// Table — неизменяемая таблица (локация, имя предмета) → стратегия.
// Источник таблицы внешний (конфигурационная БД); ядро читает её только здесь.
type Table map[string]map[string]Strategy

// Resolve возвращает стратегию для пары (локация, имя).
// Неизвестная пара разрешается в RejectedStrategy, это не ошибка.
func (t Table) Resolve(location, name string) Strategy {
	if byName, ok := t[location]; ok {
		if st, ok := byName[name]; ok {
			return st
		}
	}
	return RejectedStrategy
}

// Validate проверяет таблицу один раз при загрузке, вне горячего пути оценки:
//   - число позиций мульти- и составных стратегий в пределах констант;
//   - позиции без пустых имён и с положительным type_id;
//   - под-позиции составных стратегий разрешаются либо в ничто (отказ на
//     оценке), либо в StrategySingleItem.
//
// Последнее правило заодно исключает циклы: составная стратегия не может
// ссылаться на составную. Ядро опирается на это как на предусловие.
func (t Table) Validate() error {
	for location, byName := range t {
		for name, st := range byName {
			if err := t.validateStrategy(location, name, st); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t Table) validateStrategy(location, name string, st Strategy) error {
	switch st.Kind {
	case StrategyRejected:
		return nil
	case StrategySingleItem:
		if st.TypeID <= 0 || st.Market == "" {
			return fmt.Errorf("%w: %q at %q: empty market or non-positive type id", ErrMalformedTable, name, location)
		}
		return nil
	case StrategyMultiItem:
		if len(st.Entries) == 0 || len(st.Entries) > MaxMultiItemEntries {
			return fmt.Errorf("%w: %q at %q: %d entries (max %d)",
				ErrMalformedTable, name, location, len(st.Entries), MaxMultiItemEntries)
		}
		if st.Market == "" {
			return fmt.Errorf("%w: %q at %q: empty market", ErrMalformedTable, name, location)
		}
		for _, e := range st.Entries {
			if e.TypeID <= 0 {
				return fmt.Errorf("%w: %q at %q: non-positive type id", ErrMalformedTable, name, location)
			}
		}
		return nil
	case StrategySubItems:
		if len(st.SubItems) == 0 || len(st.SubItems) > MaxSubItemEntries {
			return fmt.Errorf("%w: %q at %q: %d sub items (max %d)",
				ErrMalformedTable, name, location, len(st.SubItems), MaxSubItemEntries)
		}
		for _, sub := range st.SubItems {
			if sub.Name == "" {
				return fmt.Errorf("%w: %q at %q: empty sub item name", ErrMalformedTable, name, location)
			}
			resolved := t.Resolve(st.Location, sub.Name)
			if resolved.Kind != StrategyRejected && resolved.Kind != StrategySingleItem {
				return fmt.Errorf("%w: %q at %q: sub item %q resolves to kind %d",
					ErrMalformedTable, name, location, sub.Name, resolved.Kind)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %q at %q: unknown strategy kind %d", ErrMalformedTable, name, location, st.Kind)
	}
}
