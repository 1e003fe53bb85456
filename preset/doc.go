// Package preset builds requests from declarative recipes.
//
// A Preset lists the entries of a request in order. Entry values are
// expressions in the expr language evaluated against caller variables, so a
// single preset can serve many concrete requests:
//
//	presets:
//	  moments:
//	    tag: Moment
//	    array: {name: Moment, count: "10", page: "int(page)"}
//	    entries:
//	      - {object: Moment, key: userId, value: "int(id)"}
//	      - {object: Moment, key: content, value: "keyword", search: contain_full}
//
// Besides the expr builtins, expressions can call path, search, columns and
// coalesce.
//
// The Manager compiles presets once, caching compiled expressions, and builds
// them on demand or all at once:
//
//	m := preset.NewManager(preset.WithRequestOptions(request.WithLogger(logger)))
//	if err := m.RegisterAll(cfg.Presets); err != nil {
//		return err
//	}
//	r, err := m.Build(ctx, "moments", preset.Vars{"id": "38710", "page": "0", "keyword": "a"})
package preset
