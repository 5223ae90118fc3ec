package i18n

var en = map[string]string{
	// Validation
	"label_input_price":        "Input token price",
	"label_output_price":       "Output token price",
	"label_cached_price":       "Cached token price",
	"label_quantity":           "Quantity",
	"err_price_nan":            "price must be a valid number",
	"err_price_min":            "minimum is $%s/1M tokens",
	"err_price_max":            "maximum is $%s/1M tokens",
	"err_input_text_required":  "Input text is required",
	"err_output_text_required": "Output text is required",
	"err_quantity_nan":         "must be a valid number",
	"err_quantity_min":         "minimum is %s",
	"err_quantity_max":         "maximum is %s",
	"err_quantity_integer":     "must be a whole number",
	"label_markup":             "Markup",
	"label_credit_value":       "Credit value",
	"err_not_finite":           "must be a finite number",
	"invalid_parameters":       "invalid parameters: %s",
	"no_data_available":        "no calculation available",

	// Export
	"csv_type":           "Type",
	"csv_description":    "Description",
	"csv_quantity":       "Quantity",
	"csv_tokens":         "Tokens",
	"csv_cost":           "Cost",
	"csv_total_tokens":   "Total Tokens",
	"csv_total_cost":     "Total Cost",
	"csv_cost_per_token": "Cost per Token",
	"csv_id":             "ID",
	"csv_timestamp":      "Timestamp",
	"csv_sale_price":     "Sale Price",
	"csv_model":          "Model",
	"row_summary":        "Summary",
	"row_total_cost":     "Total cost",
	"row_input":          "Input",
	"row_output":         "Output",
	"row_cached":         "Cache",
	"row_tokens_of":      "%s tokens",

	// Result view
	"input_tokens":          "Input tokens",
	"output_tokens":         "Output tokens",
	"cached_tokens":         "Cached tokens",
	"tokens":                "Tokens",
	"tokens_per_operation":  "Tokens/op",
	"cost_per_operation":    "Cost/op",
	"total_cost":            "Total cost",
	"total_tokens":          "Total tokens",
	"avg_cost_per_token":    "Avg cost/token",
	"sale_price":            "Sale price",
	"gross_profit":          "Gross profit",
	"margin":                "Margin",
	"markup":                "Markup",
	"tokens_per_credit":     "Tokens/credit",
	"operations_per_credit": "Ops/credit",
	"price_per_operation":   "Price/op",
	"local_total":           "Total (%s)",
	"exchange_rate":         "USD → %s %.2f",
	"breakdown":             "Breakdown",
	"financials":            "Resale",
	"summary":               "Summary",
	"scenarios":             "Scenarios",
	"history":               "History",
	"statistics":            "Statistics",
	"no_result":             "No calculation yet. Press n to start.",
	"no_history":            "History is empty.",
	"calculations":          "Calculations",
	"avg_cost":              "Avg cost",
	"min_cost":              "Min cost",
	"max_cost":              "Max cost",
	"last_calculation":      "Last",
	"quantity":              "Quantity",
	"cost":                  "Cost",
	"price_per_million":     "$/1M",
	"cost_per_token":        "Cost/token",
	"model":                 "Model",
	"when":                  "When",
	"current_marker":        "current",
	"comparison":            "Comparison",
	"difference":            "Difference",
	"change":                "Change",
	"history_help":          "↑↓ navigate  enter open  space mark  c clear",
	"scenarios_help":        "↑↓ navigate",
	"compare_hint":          "Mark two entries with space to compare them.",
	"result_selected":       "Showing calculation from %s",
	"clear_confirm":         "Press c again to clear the history",

	// Form
	"form_title":        "New calculation",
	"form_prices":       "Prices ($ per 1M tokens)",
	"form_texts":        "Sample texts",
	"form_volume":       "Volume & resale",
	"form_model":        "Model preset",
	"form_custom":       "Custom",
	"form_input_price":  "Input price",
	"form_output_price": "Output price",
	"form_cached_price": "Cached price",
	"form_input_text":   "Input text",
	"form_output_text":  "Output text",
	"form_quantity":     "Quantity",
	"form_markup":       "Markup (%)",
	"form_credit_value": "Credit value",
	"form_not_a_number": "not a number",
	"form_token_count":  "≈ %s tokens",

	// App chrome
	"tab_calculator":     "Calculator",
	"tab_scenarios":      "Scenarios",
	"tab_history":        "History",
	"initializing":       "Initializing...",
	"terminal_too_small": "Terminal too small (min 80x24)",
	"current_size":       "Current: %dx%d",
	"status_help":        "help",
	"status_new":         "new",
	"status_export":      "export",
	"status_rate":        "rate",
	"status_quit":        "quit",
	"calculating":        "Calculating...",
	"calc_success":       "Calculation complete",
	"calc_failed":        "Calculation failed: %s",
	"calc_busy":          "A calculation is already running",
	"exported_to":        "Exported to %s",
	"export_failed":      "Export failed: %s",
	"history_cleared":    "History cleared",
	"rate_updated":       "Exchange rate updated: %.2f",
	"rate_failed":        "Could not refresh the exchange rate: %s",
	"config_reloaded":    "Configuration reloaded",

	// Help overlay
	"keyboard_shortcuts": "Keyboard Shortcuts",
	"help_switch_views":  "Switch views",
	"help_cycle_views":   "Cycle views",
	"help_navigate":      "Navigate rows",
	"help_new":           "New calculation",
	"help_export":        "Export breakdown and scenarios to CSV",
	"help_rate":          "Refresh exchange rate",
	"help_clear_history": "Clear history (History view)",
	"help_toggle_help":   "Toggle help",
	"help_open_settings": "Open settings",
	"help_quit":          "Quit",
	"help_close":         "  Press ? or Esc to close",

	// Settings overlay
	"settings":             "Settings",
	"setting_language":     "Language",
	"setting_markup":       "Default markup",
	"setting_credit":       "Credit value",
	"setting_auto_refresh": "Auto rate refresh",
	"settings_help":        "  ↑↓ navigate  ←→ change  Esc save & close",
	"setting_timezone":     "Timezone",
	"help_select":          "Open entry (History view)",
	"help_mark":            "Mark for comparison (History view)",
	"on":                   "on",
	"off":                  "off",
	"form_help":            "Tab next field  Enter confirm  Esc cancel",
}
