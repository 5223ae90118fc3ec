package i18n

var pt = map[string]string{
	// Validation
	"label_input_price":        "Token de entrada",
	"label_output_price":       "Token de saída",
	"label_cached_price":       "Token de cache",
	"label_quantity":           "Quantidade",
	"err_price_nan":            "preço deve ser um número válido",
	"err_price_min":            "preço mínimo: $%s/1M tokens",
	"err_price_max":            "preço máximo: $%s/1M tokens",
	"err_input_text_required":  "Texto de entrada é obrigatório",
	"err_output_text_required": "Texto de saída é obrigatório",
	"err_quantity_nan":         "deve ser um número válido",
	"err_quantity_min":         "quantidade mínima: %s",
	"err_quantity_max":         "quantidade máxima: %s",
	"err_quantity_integer":     "deve ser um número inteiro",
	"label_markup":             "Markup",
	"label_credit_value":       "Valor do crédito",
	"err_not_finite":           "deve ser um número finito",
	"invalid_parameters":       "parâmetros inválidos: %s",
	"no_data_available":        "nenhum cálculo disponível",

	// Export
	"csv_type":           "Tipo",
	"csv_description":    "Descrição",
	"csv_quantity":       "Quantidade",
	"csv_tokens":         "Tokens",
	"csv_cost":           "Custo",
	"csv_total_tokens":   "Total de Tokens",
	"csv_total_cost":     "Custo Total",
	"csv_cost_per_token": "Custo por Token",
	"csv_id":             "ID",
	"csv_timestamp":      "Data",
	"csv_sale_price":     "Preço de Venda",
	"csv_model":          "Modelo",
	"row_summary":        "Resumo",
	"row_total_cost":     "Custo Total",
	"row_input":          "Entrada",
	"row_output":         "Saída",
	"row_cached":         "Cache",
	"row_tokens_of":      "Tokens de %s",

	// Result view
	"input_tokens":          "Tokens de entrada",
	"output_tokens":         "Tokens de saída",
	"cached_tokens":         "Tokens de cache",
	"tokens":                "Tokens",
	"tokens_per_operation":  "Tokens/op",
	"cost_per_operation":    "Custo/op",
	"total_cost":            "Custo total",
	"total_tokens":          "Total de tokens",
	"avg_cost_per_token":    "Custo médio/token",
	"sale_price":            "Preço de venda",
	"gross_profit":          "Lucro bruto",
	"margin":                "Margem",
	"markup":                "Markup",
	"tokens_per_credit":     "Tokens/crédito",
	"operations_per_credit": "Ops/crédito",
	"price_per_operation":   "Preço/op",
	"local_total":           "Total (%s)",
	"exchange_rate":         "USD → %s %.2f",
	"breakdown":             "Detalhamento",
	"financials":            "Revenda",
	"summary":               "Resumo",
	"scenarios":             "Cenários",
	"history":               "Histórico",
	"statistics":            "Estatísticas",
	"no_result":             "Nenhum cálculo ainda. Pressione n para começar.",
	"no_history":            "O histórico está vazio.",
	"calculations":          "Cálculos",
	"avg_cost":              "Custo médio",
	"min_cost":              "Custo mín.",
	"max_cost":              "Custo máx.",
	"last_calculation":      "Último",
	"quantity":              "Quantidade",
	"cost":                  "Custo",
	"price_per_million":     "$/1M",
	"cost_per_token":        "Custo/token",
	"model":                 "Modelo",
	"when":                  "Quando",
	"current_marker":        "atual",
	"comparison":            "Comparação",
	"difference":            "Diferença",
	"change":                "Variação",
	"history_help":          "↑↓ navegar  enter abrir  espaço marcar  c limpar",
	"scenarios_help":        "↑↓ navegar",
	"compare_hint":          "Marque duas entradas com espaço para compará-las.",
	"result_selected":       "Exibindo cálculo de %s",
	"clear_confirm":         "Pressione c novamente para limpar o histórico",

	// Form
	"form_title":        "Novo cálculo",
	"form_prices":       "Preços ($ por 1M tokens)",
	"form_texts":        "Textos de exemplo",
	"form_volume":       "Volume e revenda",
	"form_model":        "Modelo",
	"form_custom":       "Personalizado",
	"form_input_price":  "Preço de entrada",
	"form_output_price": "Preço de saída",
	"form_cached_price": "Preço de cache",
	"form_input_text":   "Texto de entrada",
	"form_output_text":  "Texto de saída",
	"form_quantity":     "Quantidade",
	"form_markup":       "Markup (%)",
	"form_credit_value": "Valor do crédito",
	"form_not_a_number": "não é um número",
	"form_token_count":  "≈ %s tokens",

	// App chrome
	"tab_calculator":     "Calculadora",
	"tab_scenarios":      "Cenários",
	"tab_history":        "Histórico",
	"initializing":       "Inicializando...",
	"terminal_too_small": "Terminal muito pequeno (mín. 80x24)",
	"current_size":       "Atual: %dx%d",
	"status_help":        "ajuda",
	"status_new":         "novo",
	"status_export":      "exportar",
	"status_rate":        "câmbio",
	"status_quit":        "sair",
	"calculating":        "Calculando...",
	"calc_success":       "Cálculo realizado com sucesso!",
	"calc_failed":        "Erro no cálculo: %s",
	"calc_busy":          "Um cálculo já está em andamento",
	"exported_to":        "Exportado para %s",
	"export_failed":      "Falha na exportação: %s",
	"history_cleared":    "Histórico limpo",
	"rate_updated":       "Câmbio atualizado: %.2f",
	"rate_failed":        "Não foi possível atualizar o dólar: %s",
	"config_reloaded":    "Configuração recarregada",

	// Help overlay
	"keyboard_shortcuts": "Atalhos de Teclado",
	"help_switch_views":  "Trocar de aba",
	"help_cycle_views":   "Alternar abas",
	"help_navigate":      "Navegar linhas",
	"help_new":           "Novo cálculo",
	"help_export":        "Exportar detalhamento e cenários em CSV",
	"help_rate":          "Atualizar câmbio",
	"help_clear_history": "Limpar histórico (aba Histórico)",
	"help_toggle_help":   "Mostrar/ocultar ajuda",
	"help_open_settings": "Abrir configurações",
	"help_quit":          "Sair",
	"help_close":         "  Pressione ? ou Esc para fechar",

	// Settings overlay
	"settings":             "Configurações",
	"setting_language":     "Idioma",
	"setting_markup":       "Markup padrão",
	"setting_credit":       "Valor do crédito",
	"setting_auto_refresh": "Câmbio automático",
	"settings_help":        "  ↑↓ navegar  ←→ alterar  Esc salvar e fechar",
	"setting_timezone":     "Fuso horário",
	"help_select":          "Abrir entrada (Histórico)",
	"help_mark":            "Marcar para comparação (Histórico)",
	"on":                   "ligado",
	"off":                  "desligado",
	"form_help":            "Tab próximo campo  Enter confirmar  Esc cancelar",
}
