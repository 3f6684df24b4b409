package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "username").
		From("users").
		Where(Eq("role", "COACH"), IsNull("last_login")).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, username FROM users WHERE role = ? AND last_login IS NULL ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "COACH" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_GroupByAndRange(t *testing.T) {
	query, args, err := Select("player_id", "SUM(goals) AS total_goals").
		From("player_match_stats").
		Where(Gte("match_date", "2024-01-01"), Lte("match_date", "2024-12-31")).
		GroupBy("player_id").
		OrderBy("total_goals DESC").
		Limit(5).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT player_id, SUM(goals) AS total_goals FROM player_match_stats " +
		"WHERE match_date >= ? AND match_date <= ? GROUP BY player_id ORDER BY total_goals DESC LIMIT 5"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "2024-01-01" || args[1] != "2024-12-31" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("users").
		Columns("username", "role").
		Values("coach.smith", "COACH").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO users (username, role) VALUES (?, ?)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "coach.smith" || args[1] != "COACH" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowArityMismatch(t *testing.T) {
	_, _, err := InsertInto("users").
		Columns("username", "role").
		Values("coach.smith").
		ToSQL()
	if err == nil {
		t.Fatalf("expected error for row arity mismatch")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("users").
		Set("active", false).
		SetExpr("last_login", "CURRENT_TIMESTAMP").
		Where(Eq("id", int64(7))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE users SET active = ?, last_login = CURRENT_TIMESTAMP WHERE id = ?"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != false || args[1] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("match_events").
		Where(Eq("match_id", int64(3))).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM match_events WHERE match_id = ?"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(3) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder_RequiresWhere(t *testing.T) {
	if _, _, err := DeleteFrom("match_events").ToSQL(); err == nil {
		t.Fatalf("expected error for delete without where")
	}
}

func TestInCondition_Empty(t *testing.T) {
	query, args, err := Select("id").
		From("players").
		Where(In("status", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM players WHERE 1=0"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		Username string `db:"username"`
		Role     string `db:"role"`
		Ignored  string `db:"-"`
	}

	query, args, err := InsertModel("users", row{Username: "analyst.jones", Role: "ANALYST"})
	if err != nil {
		t.Fatalf("build insert from model: %v", err)
	}

	wantQuery := "INSERT INTO users (username, role) VALUES (?, ?)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "analyst.jones" || args[1] != "ANALYST" {
		t.Fatalf("unexpected args: %+v", args)
	}
}
