package dashboard

import "html/template"

var pageTemplate = template.Must(template.New("dashboard").Parse(pageHTML))

const placeholderPage = `<!DOCTYPE html>
<html>
<head><title>Website Monitoring Dashboard</title></head>
<body style="font-family: Arial, sans-serif; text-align: center; padding: 50px;">
    <h1>🔍 Website Monitoring Dashboard</h1>
    <p>No monitoring data available yet.</p>
    <p>The dashboard will be populated after the first monitoring run.</p>
</body>
</html>
`

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>🐤 Canary Dashboard</title>
    <script src="https://cdnjs.cloudflare.com/ajax/libs/Chart.js/3.9.1/chart.min.js"></script>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            margin: 0;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .container {
            max-width: 1200px;
            margin: 0 auto;
            background: white;
            border-radius: 8px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
            padding: 20px;
        }
        .header {
            text-align: center;
            margin-bottom: 30px;
            padding-bottom: 20px;
            border-bottom: 1px solid #eee;
        }
        .alert {
            padding: 15px;
            margin-bottom: 20px;
            border-radius: 4px;
            font-weight: bold;
        }
        .alert-success { background-color: #d4edda; color: #155724; border: 1px solid #c3e6cb; }
        .alert-danger { background-color: #f8d7da; color: #721c24; border: 1px solid #f5c6cb; }
        .stats-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(250px, 1fr));
            gap: 20px;
            margin-bottom: 30px;
        }
        .stat-card {
            background: #f8f9fa;
            padding: 20px;
            border-radius: 6px;
            border-left: 4px solid #007bff;
        }
        .stat-card.success { border-left-color: #28a745; }
        .stat-card.warning { border-left-color: #ffc107; }
        .stat-card.danger { border-left-color: #dc3545; }
        .stat-number {
            font-size: 2em;
            font-weight: bold;
            margin-bottom: 5px;
        }
        .stat-label {
            color: #666;
            font-size: 0.9em;
        }
        .chart-container {
            margin: 30px 0;
            height: 400px;
        }
        .website-list {
            margin-top: 30px;
        }
        .website-item {
            display: flex;
            justify-content: space-between;
            align-items: center;
            padding: 15px;
            margin: 10px 0;
            background: #f8f9fa;
            border-radius: 6px;
            border-left: 4px solid #28a745;
        }
        .website-item.down {
            border-left-color: #dc3545;
        }
        .website-info {
            flex-grow: 1;
        }
        .website-metrics {
            display: flex;
            gap: 15px;
            align-items: center;
        }
        .uptime-badge {
            padding: 4px 8px;
            border-radius: 4px;
            font-size: 0.8em;
            font-weight: bold;
        }
        .uptime-excellent { background: #d4edda; color: #155724; }
        .uptime-good { background: #fff3cd; color: #856404; }
        .uptime-poor { background: #f8d7da; color: #721c24; }
        .response-time {
            font-size: 0.9em;
            color: #666;
        }
        .footer {
            text-align: center;
            margin-top: 30px;
            padding-top: 20px;
            border-top: 1px solid #eee;
            color: #666;
            font-size: 0.9em;
        }
        .filter-controls {
            background: #f8f9fa;
            border: 1px solid #dee2e6;
            border-radius: 8px;
            padding: 20px;
            margin-bottom: 30px;
        }
        .filter-controls h3 {
            margin: 0 0 15px 0;
            color: #333;
        }
        .filter-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(280px, 1fr));
            gap: 20px;
            margin-bottom: 20px;
        }
        .filter-section {
            background: white;
            padding: 15px;
            border-radius: 6px;
            border: 1px solid #e9ecef;
        }
        .filter-section h4 {
            margin: 0 0 10px 0;
            color: #495057;
            font-size: 0.9em;
            text-transform: uppercase;
            font-weight: 600;
        }
        .filter-section label {
            display: block;
            margin-bottom: 8px;
            font-size: 0.9em;
            color: #666;
        }
        .filter-input {
            width: 100%;
            padding: 6px 10px;
            border: 1px solid #ced4da;
            border-radius: 4px;
            font-size: 0.9em;
            margin-top: 3px;
        }
        .filter-input:focus {
            outline: none;
            border-color: #007bff;
            box-shadow: 0 0 0 2px rgba(0, 123, 255, 0.25);
        }
        .filter-button {
            padding: 6px 12px;
            border: 1px solid #6c757d;
            background: white;
            border-radius: 4px;
            cursor: pointer;
            font-size: 0.8em;
            margin-top: 8px;
            margin-right: 5px;
        }
        .filter-button:hover {
            background: #e9ecef;
        }
        .filter-button.primary {
            background: #007bff;
            color: white;
            border-color: #007bff;
        }
        .filter-button.primary:hover {
            background: #0056b3;
        }
        .filter-actions {
            text-align: center;
            padding-top: 15px;
            border-top: 1px solid #dee2e6;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🐤 Canary Dashboard</h1>
            <p>Last updated: {{.LastUpdated}}</p>
            {{if .HasStatus}}{{if gt .FailedSites 0}}<div class="alert alert-danger">⚠️ {{.FailedSites}} website(s) are currently down!</div>{{else}}<div class="alert alert-success">✅ All websites are operational</div>{{end}}{{end}}
        </div>

        <div class="stats-grid">
            <div class="stat-card success">
                <div class="stat-number">{{.TotalWebsites}}</div>
                <div class="stat-label">Total Websites</div>
            </div>
            <div class="stat-card {{.OverallStatusClass}}">
                <div class="stat-number">{{.OverallUptime}}%</div>
                <div class="stat-label">Overall Uptime</div>
            </div>
            <div class="stat-card">
                <div class="stat-number">{{.AvgResponseTimeMs}}ms</div>
                <div class="stat-label">Avg Response Time</div>
            </div>
            <div class="stat-card">
                <div class="stat-number">{{.TotalChecks}}</div>
                <div class="stat-label">Total Checks</div>
            </div>
        </div>

        <div class="filter-controls">
            <h3>📊 Chart Filters</h3>
            <form onsubmit="applyFilters()" action="javascript:void(0);">
            <div class="filter-grid">
                <div class="filter-section">
                    <h4>Time Range</h4>
                    <label>
                        Start Date:
                        <input type="datetime-local" id="startDate" class="filter-input">
                    </label>
                    <label>
                        End Date:
                        <input type="datetime-local" id="endDate" class="filter-input">
                    </label>
                    <button onclick="resetTimeRange()" class="filter-button" type="button">Reset</button>
                </div>
                <div class="filter-section">
                    <h4>Response Time Range (seconds)</h4>
                    <label>
                        Min Response Time:
                        <input type="number" id="minResponseTime" step="0.1" min="0" class="filter-input" placeholder="0.0">
                    </label>
                    <label>
                        Max Response Time:
                        <input type="number" id="maxResponseTime" step="0.1" min="0" class="filter-input" placeholder="Auto">
                    </label>
                    <button onclick="resetResponseTimeRange()" class="filter-button" type="button">Reset</button>
                </div>
                <div class="filter-section">
                    <h4>Failed Site Count Range</h4>
                    <label>
                        Min Y Value:
                        <input type="number" id="minFailedSiteCount" min="0" class="filter-input" placeholder="0">
                    </label>
                    <label>
                        Max Y Value:
                        <input type="number" id="maxFailedSiteCount" min="0" class="filter-input" placeholder="Auto">
                    </label>
                    <button onclick="resetSiteCountRange()" class="filter-button" type="button">Reset</button>
                </div>
            </div>
            <div class="filter-actions">
                <button onclick="applyFilters()" class="filter-button primary" type="submit">Apply Filters</button>
                <button onclick="resetAllFilters()" class="filter-button" type="button">Reset All</button>
            </div>
            </form>
        </div>

        <div class="chart-container">
            <canvas id="uptimeChart"></canvas>
        </div>

        <div class="chart-container">
            <canvas id="responseTimeChart"></canvas>
        </div>

        <div class="website-list">
            <h2>Website Status</h2>
            {{range .Websites}}
            <div class="website-item {{.ItemClass}}">
                <div class="website-info">
                    <strong>{{.Name}}</strong><br>
                    <small><a href="{{.URL}}">{{.URL}}</a></small>
                </div>
                <div class="website-metrics">
                    <div>
                        <span class="uptime-badge {{.UptimeClass}}">{{.Uptime}}% uptime</span>
                        {{if .LastResponseTime}}<div class="response-time">Last: {{.LastResponseTime}}s</div>{{end}}
                    </div>
                </div>
            </div>
            {{end}}
        </div>

        <div class="footer">
            Generated by <a href="https://github.com/3d12/canary">Canary</a><br>
            Total historical entries: {{.TotalEntries}}
        </div>
    </div>

    <script>
        const dashboardData = {{.Data}};

        // Interpret a timestamp's local fields as UTC
        function timestampToUTC(timestamp) {
            const date = new Date(timestamp);
            const dateUTC = Date.UTC(date.getFullYear(), date.getMonth(), date.getDate(), date.getHours(), date.getMinutes(), date.getSeconds())
            return new Date(dateUTC);
        }

        function timestampToMs(timestamp) {
            const date = new Date(timestamp);
            return new Date(date).getTime();
        }

        function formatTime(ms) {
            const date = new Date(ms);
            return date.toLocaleDateString() + ' ' + date.toLocaleTimeString([], {hour: '2-digit', minute:'2-digit'});
        }

        let uptimeChart, responseTimeChart;

        function initializeFilters() {
            if (!dashboardData.timeline || dashboardData.timeline.length === 0) return;

            const timestamps = dashboardData.timeline.map(d => new Date(d.timestamp));
            const maxDate = timestampToUTC(new Date(Math.max(...timestamps)));
            let minDate = new Date(maxDate);
            minDate.setHours(maxDate.getHours()-24);

            document.getElementById('startDate').value = formatDateForInput(minDate);
            document.getElementById('endDate').value = formatDateForInput(maxDate);

            const allResponseTimes = [];
            Object.values(dashboardData.response_times).forEach(siteData => {
                siteData.forEach(d => allResponseTimes.push(d.response_time));
            });
            if (allResponseTimes.length > 0) {
                document.getElementById('maxResponseTime').placeholder = Math.max(...allResponseTimes).toFixed(2);
            }

            const allFailedSiteCounts = dashboardData.timeline.map(d => d.failed_sites);
            document.getElementById('maxFailedSiteCount').placeholder = Math.max(...allFailedSiteCounts);
        }

        function formatDateForInput(date) {
            const year = date.getFullYear();
            const month = String(date.getMonth() + 1).padStart(2, '0');
            const day = String(date.getDate()).padStart(2, '0');
            const hours = String(date.getHours()).padStart(2, '0');
            const minutes = String(date.getMinutes()).padStart(2, '0');
            return year + '-' + month + '-' + day + 'T' + hours + ':' + minutes;
        }

        function getFilteredData() {
            const startDate = document.getElementById('startDate').value ? new Date(document.getElementById('startDate').value) : null;
            const endDate = document.getElementById('endDate').value ? new Date(document.getElementById('endDate').value) : null;
            const minResponseTime = parseFloat(document.getElementById('minResponseTime').value);
            const maxResponseTime = parseFloat(document.getElementById('maxResponseTime').value);
            const minFailedSiteCount = parseInt(document.getElementById('minFailedSiteCount').value);
            const maxFailedSiteCount = parseInt(document.getElementById('maxFailedSiteCount').value);

            const filteredTimeline = dashboardData.timeline.filter(d => {
                const timestamp = new Date(d.timestamp);
                const timeInRange = (!startDate || timestampToUTC(timestamp) >= startDate) && (!endDate || timestampToUTC(timestamp) <= endDate);
                const failedSitesInRange = (!minFailedSiteCount || d.failed_sites >= minFailedSiteCount) && (!maxFailedSiteCount || d.failed_sites <= maxFailedSiteCount);
                return timeInRange && failedSitesInRange;
            });

            const filteredResponseTimes = {};
            Object.keys(dashboardData.response_times).forEach(siteName => {
                filteredResponseTimes[siteName] = dashboardData.response_times[siteName].filter(d => {
                    const timestamp = new Date(d.timestamp);
                    const timeInRange = (!startDate || timestampToUTC(timestamp) >= startDate) && (!endDate || timestampToUTC(timestamp) <= endDate);
                    const responseTimeInRange = (!minResponseTime || d.response_time >= minResponseTime) && (!maxResponseTime || d.response_time <= maxResponseTime);
                    return timeInRange && responseTimeInRange;
                });
            });

            return {
                timeline: filteredTimeline,
                response_times: filteredResponseTimes
            };
        }

        function resetTimeRange() {
            const timestamps = dashboardData.timeline.map(d => new Date(d.timestamp));
            const minDate = timestampToUTC(new Date(Math.min(...timestamps)));
            const maxDate = timestampToUTC(new Date(Math.max(...timestamps)));
            document.getElementById('startDate').value = formatDateForInput(minDate);
            document.getElementById('endDate').value = formatDateForInput(maxDate);
        }

        function resetResponseTimeRange() {
            document.getElementById('minResponseTime').value = '';
            document.getElementById('maxResponseTime').value = '';
        }

        function resetSiteCountRange() {
            document.getElementById('minFailedSiteCount').value = '';
            document.getElementById('maxFailedSiteCount').value = '';
        }

        function resetAllFilters() {
            resetTimeRange();
            resetResponseTimeRange();
            resetSiteCountRange();
            applyFilters();
        }

        function applyFilters() {
            const filteredData = getFilteredData();
            updateCharts(filteredData);
        }

        const palette = ['#007bff', '#28a745', '#ffc107', '#dc3545', '#6f42c1', '#20c997', '#fd7e14', '#e83e8c'];

        function responseTimeDatasetsFrom(responseTimes) {
            return Object.keys(responseTimes).map((siteName, index) => {
                return {
                    label: siteName,
                    data: responseTimes[siteName].map(d => ({
                        x: timestampToMs(timestampToUTC(d.timestamp)),
                        y: d.response_time
                    })),
                    borderColor: palette[index % palette.length],
                    backgroundColor: palette[index % palette.length] + '20',
                    tension: 0.4
                };
            });
        }

        function updateCharts(filteredData) {
            uptimeChart.data.datasets[0].data = filteredData.timeline.map(d => ({
                x: timestampToMs(timestampToUTC(d.timestamp)),
                y: d.successful_sites
            }));
            uptimeChart.data.datasets[1].data = filteredData.timeline.map(d => ({
                x: timestampToMs(timestampToUTC(d.timestamp)),
                y: d.failed_sites
            }));
            uptimeChart.update();

            responseTimeChart.data.datasets = responseTimeDatasetsFrom(filteredData.response_times);
            responseTimeChart.update();
        }

        const uptimeCtx = document.getElementById('uptimeChart').getContext('2d');
        uptimeChart = new Chart(uptimeCtx, {
            type: 'line',
            data: {
                datasets: [{
                    label: 'Successful Sites',
                    data: dashboardData.timeline.map(d => ({
                        x: timestampToMs(timestampToUTC(d.timestamp)),
                        y: d.successful_sites
                    })),
                    borderColor: '#28a745',
                    backgroundColor: 'rgba(40, 167, 69, 0.1)',
                    tension: 0.4,
                    fill: true
                }, {
                    label: 'Failed Sites',
                    data: dashboardData.timeline.map(d => ({
                        x: timestampToMs(timestampToUTC(d.timestamp)),
                        y: d.failed_sites
                    })),
                    borderColor: '#dc3545',
                    backgroundColor: 'rgba(220, 53, 69, 0.1)',
                    tension: 0.4,
                    fill: true
                }]
            },
            options: {
                responsive: true,
                maintainAspectRatio: false,
                plugins: {
                    title: {
                        display: true,
                        text: 'Website Status Over Time',
                        font: { size: 16 }
                    },
                    legend: { position: 'top' },
                    tooltip: {
                        callbacks: {
                            title: function(context) {
                                return new Date(context[0].parsed.x).toLocaleString();
                            }
                        }
                    }
                },
                scales: {
                    x: {
                        type: 'linear',
                        title: { display: true, text: 'Time' },
                        ticks: {
                            maxTicksLimit: 8,
                            callback: function(value) {
                                return formatTime(value);
                            }
                        }
                    },
                    y: {
                        beginAtZero: true,
                        ticks: { stepSize: 1 },
                        title: { display: true, text: 'Number of Sites' }
                    }
                },
                interaction: {
                    intersect: false,
                    mode: 'index'
                }
            }
        });

        const responseTimeCtx = document.getElementById('responseTimeChart').getContext('2d');
        responseTimeChart = new Chart(responseTimeCtx, {
            type: 'line',
            data: {
                datasets: responseTimeDatasetsFrom(dashboardData.response_times)
            },
            options: {
                responsive: true,
                maintainAspectRatio: false,
                plugins: {
                    title: {
                        display: true,
                        text: 'Response Times Over Time',
                        font: { size: 16 }
                    },
                    legend: { position: 'top' },
                    tooltip: {
                        callbacks: {
                            title: function(context) {
                                return new Date(context[0].parsed.x).toLocaleString();
                            }
                        }
                    }
                },
                scales: {
                    x: {
                        type: 'linear',
                        title: { display: true, text: 'Time' },
                        ticks: {
                            maxTicksLimit: 8,
                            callback: function(value) {
                                return formatTime(value);
                            }
                        }
                    },
                    y: {
                        beginAtZero: true,
                        title: { display: true, text: 'Response Time (seconds)' }
                    }
                },
                interaction: {
                    intersect: false,
                    mode: 'index'
                }
            }
        });

        initializeFilters();
        applyFilters();
    </script>
</body>
</html>
`
