package expense

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/bob/mods"
	"github.com/stephenafamo/scan"
)

var _ IExpensesTable = (*ExpensesTable)(nil)

var expenseColumns = []any{"id", "name", "amount", "currency", "category", "date", "created_at", "updated_at"}

type ExpensesTable struct {
	exec bob.Executor
}

// NewExpensesTable builds a table over any bob executor, so the same
// implementation serves both pooled reads and transactional writes.
func NewExpensesTable(exec bob.Executor) *ExpensesTable {
	return &ExpensesTable{exec: exec}
}

// Insert creates a new expense and returns the persisted row.
func (t *ExpensesTable) Insert(ctx context.Context, create *ExpenseCreate) (*Expense, error) {
	q := psql.Insert(
		im.Into("expenses", "name", "amount", "currency", "category", "date"),
		im.Values(psql.Arg(create.Name, create.Amount, create.Currency, create.Category, create.Date)),
		im.Returning(expenseColumns...),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Expense]())
}

// FindByID retrieves an expense by primary key. Returns nil when absent.
func (t *ExpensesTable) FindByID(ctx context.Context, id int64) (*Expense, error) {
	q := psql.Select(
		sm.Columns(expenseColumns...),
		sm.From("expenses"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Expense]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

func filterWhereMods(filter *ExpenseFilter) []mods.Where[*dialect.SelectQuery] {
	var whereMods []mods.Where[*dialect.SelectQuery]
	if filter == nil {
		return whereMods
	}
	if filter.Category != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("category").EQ(psql.Arg(*filter.Category))))
	}
	if filter.FromDate != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("date").GTE(psql.Arg(*filter.FromDate))))
	}
	if filter.ToDate != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("date").LTE(psql.Arg(*filter.ToDate))))
	}
	return whereMods
}

// List returns expenses matching the filter, ordered by occurrence date
// descending with id descending as tie-break. The secondary key is unique,
// so pagination over equal dates stays stable.
func (t *ExpensesTable) List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(expenseColumns...),
		sm.From("expenses"),
	}
	whereMods := filterWhereMods(filter)
	if len(whereMods) == 1 {
		queryMods = append(queryMods, whereMods[0])
	} else if len(whereMods) > 1 {
		queryMods = append(queryMods, psql.WhereAnd(whereMods...))
	}
	queryMods = append(queryMods,
		sm.OrderBy("date").Desc(),
		sm.OrderBy("id").Desc(),
	)
	if filter != nil && filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}
	if filter != nil && filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}
	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Expense]())
}

// Count returns the number of rows matching the filter, ignoring the
// filter's limit and offset.
func (t *ExpensesTable) Count(ctx context.Context, filter *ExpenseFilter) (int64, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw("COUNT(*)")),
		sm.From("expenses"),
	}
	whereMods := filterWhereMods(filter)
	if len(whereMods) == 1 {
		queryMods = append(queryMods, whereMods[0])
	} else if len(whereMods) > 1 {
		queryMods = append(queryMods, psql.WhereAnd(whereMods...))
	}
	return bob.One(ctx, t.exec, psql.Select(queryMods...), scan.SingleColumnMapper[int64])
}

// Update applies the set fields to the row and refreshes updated_at.
// Returns nil when the id does not exist.
func (t *ExpensesTable) Update(ctx context.Context, id int64, update *ExpenseUpdate) (*Expense, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("expenses"),
	}
	if name, ok := update.Name.Get(); ok {
		queryMods = append(queryMods, um.SetCol("name").ToArg(name))
	}
	if amount, ok := update.Amount.Get(); ok {
		queryMods = append(queryMods, um.SetCol("amount").ToArg(amount))
	}
	if currency, ok := update.Currency.Get(); ok {
		queryMods = append(queryMods, um.SetCol("currency").ToArg(currency))
	}
	if category, ok := update.Category.Get(); ok {
		queryMods = append(queryMods, um.SetCol("category").ToArg(category))
	}
	if date, ok := update.Date.Get(); ok {
		queryMods = append(queryMods, um.SetCol("date").ToArg(date))
	}
	queryMods = append(queryMods,
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(expenseColumns...),
	)
	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[*Expense]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Delete removes the row and reports whether it existed.
func (t *ExpensesTable) Delete(ctx context.Context, id int64) (bool, error) {
	q := psql.Delete(
		dm.From("expenses"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	result, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Totals returns the table-wide sum and row count.
func (t *ExpensesTable) Totals(ctx context.Context) (*Totals, error) {
	q := psql.Select(
		sm.Columns(
			psql.Raw("COALESCE(SUM(amount), 0) AS total_amount"),
			psql.Raw("COUNT(*) AS total_count"),
		),
		sm.From("expenses"),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Totals]())
}

// CategoryTotals returns per-category sums and counts ordered by summed
// amount descending.
func (t *ExpensesTable) CategoryTotals(ctx context.Context) ([]*CategoryTotal, error) {
	q := psql.Select(
		sm.Columns(
			"category",
			psql.Raw("SUM(amount) AS total"),
			psql.Raw("COUNT(*) AS count"),
		),
		sm.From("expenses"),
		sm.GroupBy("category"),
		sm.OrderBy("total").Desc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*CategoryTotal]())
}
