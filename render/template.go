package render

// reportTemplate is the standalone HTML document for a profiling report:
// dataset overview table, per-column cards and interaction tables.
const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Profile: {{.DatasetName}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 2rem; color: #1f2933; }
h1, h2, h3 { font-weight: 600; }
table { border-collapse: collapse; margin: 0.5rem 0 1.5rem; }
th, td { border: 1px solid #d5dbe1; padding: 0.3rem 0.7rem; text-align: left; font-size: 0.9rem; }
th { background: #f0f3f6; }
.card { border: 1px solid #d5dbe1; border-radius: 6px; padding: 0.8rem 1.2rem; margin-bottom: 1rem; }
.type-badge { display: inline-block; background: #e3ecf7; border-radius: 4px; padding: 0.1rem 0.5rem; font-size: 0.8rem; margin-left: 0.5rem; }
</style>
</head>
<body>
<h1>Profile: {{.DatasetName}}</h1>

<h2>Dataset</h2>
<table>
<tbody>
<tr><th>Observations</th><td>{{.RowCount}}</td></tr>
<tr><th>Variables</th><td>{{.ColumnCount}}</td></tr>
<tr><th>Missing cells</th><td>{{.TotalMissingCells}}</td></tr>
<tr><th>Duplicate rows</th><td>{{.DuplicateRowCount}}</td></tr>
<tr><th>Estimated size</th><td>{{bytes .EstimatedBytes}}</td></tr>
</tbody>
</table>

<h3>Variable types</h3>
<table>
<tbody>
{{range .TypeRows}}<tr><th>{{.Type}}</th><td>{{.Count}}</td></tr>
{{end}}</tbody>
</table>

<h2>Variables</h2>
{{range .Summaries}}
<div class="card">
<h3>{{.Name}}<span class="type-badge">{{.Type}}</span></h3>
<table>
<tbody>
<tr><th>Missing</th><td>{{.Missing}}</td></tr>
<tr><th>Distinct</th><td>{{.Distinct}}</td></tr>
{{with .Numeric}}
<tr><th>Min</th><td>{{num .Min}}</td></tr>
<tr><th>Max</th><td>{{num .Max}}</td></tr>
<tr><th>Mean</th><td>{{num .Mean}}</td></tr>
<tr><th>Std dev</th><td>{{num .StdDev}}</td></tr>
<tr><th>Skewness</th><td>{{num .Skewness}}</td></tr>
<tr><th>Range</th><td>{{num .Range}}</td></tr>
<tr><th>IQR</th><td>{{num .IQR}}</td></tr>
<tr><th>Zeros</th><td>{{.ZeroCount}}</td></tr>
<tr><th>Negative</th><td>{{.NegativeCount}}</td></tr>
<tr><th>Infinite</th><td>{{.InfiniteCount}}</td></tr>
{{range .Quantiles}}<tr><th>p{{.Q}}</th><td>{{num .Value}}</td></tr>
{{end}}
{{end}}
{{with .DateTime}}
<tr><th>Min</th><td>{{time .Min}}</td></tr>
<tr><th>Max</th><td>{{time .Max}}</td></tr>
<tr><th>Span</th><td>{{span .Span}}</td></tr>
<tr><th>Before median</th><td>{{count .BeforeMedian}}</td></tr>
<tr><th>After median</th><td>{{count .AfterMedian}}</td></tr>
{{end}}
{{with .Text}}
<tr><th>Length min</th><td>{{count .LengthMin}}</td></tr>
<tr><th>Length mean</th><td>{{num .LengthMean}}</td></tr>
<tr><th>Length max</th><td>{{count .LengthMax}}</td></tr>
<tr><th>Empty strings</th><td>{{.EmptyCount}}</td></tr>
{{end}}
</tbody>
</table>
{{with .Categorical}}
<table>
<thead><tr><th>Value</th><th>Count</th></tr></thead>
<tbody>
{{range .TopValues}}<tr><td>{{.Value}}</td><td>{{.Count}}</td></tr>
{{end}}{{if gt .OtherCount 0}}<tr><td><em>other</em></td><td>{{.OtherCount}}</td></tr>
{{end}}</tbody>
</table>
{{end}}
</div>
{{end}}

{{if .CorrelationRows}}
<h2>Correlations</h2>
<table>
<thead><tr><th>Column</th><th>Column</th><th>Pearson r</th></tr></thead>
<tbody>
{{range .CorrelationRows}}<tr><td>{{.A}}</td><td>{{.B}}</td><td>{{num .Value}}</td></tr>
{{end}}</tbody>
</table>
{{end}}

{{if .OverlapRows}}
<h2>Missing together</h2>
<table>
<thead><tr><th>Column</th><th>Column</th><th>Rows both missing</th></tr></thead>
<tbody>
{{range .OverlapRows}}<tr><td>{{.A}}</td><td>{{.B}}</td><td>{{.Count}}</td></tr>
{{end}}</tbody>
</table>
{{end}}

</body>
</html>
`
